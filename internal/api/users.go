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

// NewUserRequest payload of registration.
// swagger:model NewUserRequest
type NewUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"buyer@medishop.com"`
	Name     string `json:"name" example:"Rahim"`
	Photo    string `json:"photo"`
	Role     string `json:"role" binding:"omitempty,oneof=user seller" example:"user"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// TokenRequest swagger:model TokenRequest
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email" example:"seller@medishop.com"`
	Password string `json:"password"`
}

var alreadyExists = gin.H{"message": "user already exists", "inserted": false}

// CreateUser godoc
// @Summary  Register a user once per email
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body NewUserRequest true "user"
// @Success  200 {object} store.InsertAck
// @Router   /users [post]
func (h *handler) CreateUser(c *gin.Context) {
	var req NewUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Users.FindByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusOK, alreadyExists)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		storeError(c, err, "find user")
		return
	}

	u := store.User{
		Email:     req.Email,
		Name:      req.Name,
		Photo:     req.Photo,
		Role:      req.Role,
		CreatedAt: h.Now().UTC(),
	}
	if u.Role == "" {
		u.Role = store.RoleUser
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			storeError(c, err, "hash password")
			return
		}
		u.Password = hashed
	}

	ack, err := h.Users.Insert(ctx, &u)
	if errors.Is(err, store.ErrDuplicate) {
		// a concurrent registration won the unique index
		c.JSON(http.StatusOK, alreadyExists)
		return
	}
	if err != nil {
		storeError(c, err, "insert user")
		return
	}
	slog.Info("user registered", slog.String(httpx.TraceIDKey, httpx.TraceID(c)), slog.String("email", u.Email))
	c.JSON(http.StatusOK, ack)
}

// ListUsers godoc
// @Summary  Users with the given email
// @Tags     users
// @Produce  json
// @Param    email query string true "email"
// @Success  200 {array} store.User
// @Router   /users [get]
func (h *handler) ListUsers(c *gin.Context) {
	var q struct {
		Email string `form:"email" binding:"required,email"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	users, err := h.Users.ListByEmail(c.Request.Context(), q.Email)
	if err != nil {
		storeError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// IssueToken godoc
// @Summary      Sign a 24h token for a registered user
// @Description  A user registered with a password must present it. With guards on, users without a password cannot get a token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body TokenRequest true "credentials"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /jwt [post]
func (h *handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		storeError(c, err, "find user")
		return
	}
	if u.Password == "" && h.Guard.Enabled() {
		// without a stored hash the email alone would be a credential
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "password login not set up for this user"})
		return
	}
	if u.Password != "" && !auth.CheckPassword(u.Password, req.Password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	token, err := h.Tokens.Sign(u.Email, u.Role)
	if err != nil {
		storeError(c, err, "sign token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
