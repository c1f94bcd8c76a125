package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/store"
)

const actionDecrease = "decrease"

// NewCartItemRequest payload of an add-to-cart.
// swagger:model NewCartItemRequest
type NewCartItemRequest struct {
	Name        string  `json:"name" binding:"required" example:"Napa 500mg"`
	Buyer       string  `json:"buyer" binding:"required,email" example:"buyer@medishop.com"`
	Company     string  `json:"company" example:"Beximco"`
	Quantity    int     `json:"quantity" binding:"required,min=1" example:"2"`
	Price       float64 `json:"price" binding:"gte=0" example:"1.5"`
	Image       string  `json:"image"`
	SellerEmail string  `json:"sellerEmail" binding:"omitempty,email"`
	MedicineID  string  `json:"medicineId"`
}

// CartActionRequest swagger:model CartActionRequest
type CartActionRequest struct {
	Action string `json:"action" binding:"required" example:"decrease"`
}

// id is checked by the repository, only on the branch that uses it.
type removeCartQuery struct {
	ID    string `form:"id"`
	Buyer string `form:"buyer"`
}

// GetCart godoc
// @Summary  Cart rows of a buyer
// @Tags     cart
// @Produce  json
// @Param    buyer query string true "buyer email"
// @Success  200 {array}  store.CartItem
// @Failure  400 {object} map[string]string
// @Failure  403 {object} map[string]string
// @Router   /cart [get]
func (h *handler) GetCart(c *gin.Context) {
	var q struct {
		Buyer string `form:"buyer" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	if !owns(c, q.Buyer) {
		forbidden(c)
		return
	}
	items, err := h.Cart.ListByBuyer(c.Request.Context(), q.Buyer)
	if err != nil {
		storeError(c, err, "list cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary      Add an item to the cart
// @Description  Merges into the existing (name, buyer, company) row when there is one and inserts otherwise. Exactly one write happens per call.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body NewCartItemRequest true "cart item"
// @Success      200 {object} store.InsertAck "insert ack; an UpdateAck when merged"
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /cart [post]
func (h *handler) AddToCart(c *gin.Context) {
	var req NewCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !owns(c, req.Buyer) {
		forbidden(c)
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Cart.FindByKey(ctx, req.Name, req.Buyer, req.Company)
	switch {
	case err == nil:
		h.incrementCartItem(c, existing.ID.Hex(), req.Quantity)
		return
	case !errors.Is(err, store.ErrNotFound):
		storeError(c, err, "find cart item")
		return
	}

	ack, err := h.Cart.Insert(ctx, &store.CartItem{
		Name:        req.Name,
		Buyer:       req.Buyer,
		Company:     req.Company,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Image:       req.Image,
		SellerEmail: req.SellerEmail,
		MedicineID:  req.MedicineID,
	})
	if errors.Is(err, store.ErrDuplicate) {
		// a concurrent add created the row between lookup and insert
		existing, err = h.Cart.FindByKey(ctx, req.Name, req.Buyer, req.Company)
		if err != nil {
			storeError(c, err, "find cart item")
			return
		}
		h.incrementCartItem(c, existing.ID.Hex(), req.Quantity)
		return
	}
	if err != nil {
		storeError(c, err, "insert cart item")
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *handler) incrementCartItem(c *gin.Context, id string, delta int) {
	ack, err := h.Cart.IncrementQuantity(c.Request.Context(), id, delta)
	if err != nil {
		storeError(c, err, "increment cart item")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// AdjustCartItem godoc
// @Summary      Change a cart row's quantity by one
// @Description  "decrease" at quantity 1 removes the row; every other action increases.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id   path string            true "cart row id"
// @Param        body body CartActionRequest true "action"
// @Success      200 {object} store.UpdateAck
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /cart/{id} [patch]
func (h *handler) AdjustCartItem(c *gin.Context) {
	var req CartActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	item, err := h.Cart.FindByID(ctx, id)
	if err != nil {
		storeError(c, err, "find cart item")
		return
	}
	if !owns(c, item.Buyer) {
		forbidden(c)
		return
	}

	if req.Action != actionDecrease {
		h.incrementCartItem(c, id, 1)
		return
	}
	if item.Quantity <= 1 {
		ack, err := h.Cart.Delete(ctx, id)
		if err != nil {
			storeError(c, err, "delete cart item")
			return
		}
		c.JSON(http.StatusOK, ack)
		return
	}
	h.incrementCartItem(c, id, -1)
}

// RemoveCart godoc
// @Summary      Clear a buyer's cart or remove one row
// @Description  buyer wins when both are given; id is only read without buyer.
// @Tags         cart
// @Produce      json
// @Param        buyer query string false "buyer email"
// @Param        id    query string false "cart row id"
// @Success      200 {object} store.DeleteAck
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /cart [delete]
func (h *handler) RemoveCart(c *gin.Context) {
	var q removeCartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	var (
		ack store.DeleteAck
		err error
	)
	switch {
	case q.Buyer != "":
		if !owns(c, q.Buyer) {
			forbidden(c)
			return
		}
		ack, err = h.Cart.DeleteByBuyer(ctx, q.Buyer)
	case q.ID != "":
		if _, restricted := callerEmail(c); restricted {
			item, ferr := h.Cart.FindByID(ctx, q.ID)
			if ferr != nil && !errors.Is(ferr, store.ErrNotFound) {
				storeError(c, ferr, "find cart item")
				return
			}
			if item != nil && !owns(c, item.Buyer) {
				forbidden(c)
				return
			}
		}
		ack, err = h.Cart.Delete(ctx, q.ID)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "buyer or id is required"})
		return
	}
	if err != nil {
		storeError(c, err, "delete cart")
		return
	}
	c.JSON(http.StatusOK, ack)
}
