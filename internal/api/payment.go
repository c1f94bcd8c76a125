package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"medishop-server/internal/httpx"
)

// PaymentIntentRequest amount is in major currency units.
type PaymentIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePaymentIntent godoc
// @Summary  Create a Stripe payment intent
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body body PaymentIntentRequest true "amount in major units"
// @Success  200 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /create-payment-intent [post]
func (h *handler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	secret, err := h.Payments.CreateIntent(c.Request.Context(), decimal.NewFromFloat(req.Amount))
	if err != nil {
		slog.Error("payment intent failed", slog.String(httpx.TraceIDKey, httpx.TraceID(c)), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "payment failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
