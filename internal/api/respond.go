package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/auth"
	"medishop-server/internal/httpx"
	"medishop-server/internal/store"
)

func badRequest(c *gin.Context, err error) {
	slog.Warn("rejected request",
		slog.String(httpx.TraceIDKey, httpx.TraceID(c)),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": httpx.BindError(err)})
}

// storeError maps repository errors; anything unexpected is logged and
// hidden behind a 500.
func storeError(c *gin.Context, err error, op string) {
	traceID := httpx.TraceID(c)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrEmptyPatch):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error(op+" failed", slog.String(httpx.TraceIDKey, traceID), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
}

// callerEmail is the token email of a non-admin caller. ok is false when the
// guard is off or the caller is an admin; both may act for any email.
func callerEmail(c *gin.Context) (email string, ok bool) {
	claims, found := auth.ClaimsFrom(c)
	if !found || claims.Role == store.RoleAdmin {
		return "", false
	}
	return claims.Email, true
}

// owns reports whether the caller may touch rows belonging to email.
func owns(c *gin.Context, email string) bool {
	me, restricted := callerEmail(c)
	return !restricted || me == email
}

// ownsOrder allows the buyer and any seller with a line item in the order.
func ownsOrder(c *gin.Context, o *store.Order) bool {
	me, restricted := callerEmail(c)
	if !restricted || o.BuyerEmail == me {
		return true
	}
	for _, it := range o.Items {
		if it.SellerEmail == me {
			return true
		}
	}
	return false
}
