package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/store"
)

// OrderItemRequest swagger:model OrderItemRequest
type OrderItemRequest struct {
	Name        string  `json:"name" binding:"required" example:"Napa 500mg"`
	Company     string  `json:"company" example:"Beximco"`
	Price       float64 `json:"price" binding:"gte=0" example:"2.5"`
	Quantity    int     `json:"quantity" binding:"required,min=1" example:"2"`
	SellerEmail string  `json:"sellerEmail" binding:"required,email" example:"seller@medishop.com"`
}

// NewOrderRequest payload of checkout. createdAt must use the stored
// layout so date-range listings keep working.
// swagger:model NewOrderRequest
type NewOrderRequest struct {
	BuyerEmail string             `json:"buyerEmail" binding:"required,email" example:"buyer@medishop.com"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalPrice float64            `json:"totalPrice" binding:"gte=0" example:"5"`
	CreatedAt  string             `json:"createdAt" binding:"omitempty,datetime=2006-01-02T15:04:05.000Z" example:"2025-03-14T10:30:00.000Z"`
}

// MarkPaidRequest swagger:model MarkPaidRequest
type MarkPaidRequest struct {
	TransactionID string `json:"transactionId" binding:"required" example:"pi_3PqXyZ"`
}

type listOrdersQuery struct {
	Email string `form:"email"`
	Buyer string `form:"buyer"`
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// CreateOrder godoc
// @Summary      Place an order
// @Description  Always stored unpaid; payment fields are only set by PUT /orders/{id}.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body body NewOrderRequest true "order"
// @Success      200 {object} store.InsertAck
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /orders [post]
func (h *handler) CreateOrder(c *gin.Context) {
	var req NewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !owns(c, req.BuyerEmail) {
		forbidden(c)
		return
	}
	o := store.Order{
		BuyerEmail:    req.BuyerEmail,
		Items:         make([]store.OrderItem, 0, len(req.Items)),
		TotalPrice:    req.TotalPrice,
		PaymentStatus: store.PaymentUnpaid,
		CreatedAt:     req.CreatedAt,
	}
	for _, it := range req.Items {
		o.Items = append(o.Items, store.OrderItem{
			Name:        it.Name,
			Company:     it.Company,
			Price:       it.Price,
			Quantity:    it.Quantity,
			SellerEmail: it.SellerEmail,
		})
	}
	if o.CreatedAt == "" {
		o.CreatedAt = h.Now().UTC().Format(store.OrderTimeLayout)
	}

	ack, err := h.Orders.Insert(c.Request.Context(), &o)
	if err != nil {
		storeError(c, err, "insert order")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// ListOrders godoc
// @Summary      Orders filtered by seller, buyer and creation date
// @Description  With guards on, non-admin callers only see orders they bought or sell in.
// @Tags         orders
// @Produce      json
// @Param        email query string false "seller email (any line item)"
// @Param        buyer query string false "buyer email"
// @Param        start query string false "YYYY-MM-DD, used with end"
// @Param        end   query string false "YYYY-MM-DD, used with start"
// @Success      200 {array}  store.Order
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /orders [get]
func (h *handler) ListOrders(c *gin.Context) {
	var q listOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	if me, restricted := callerEmail(c); restricted {
		if q.Email == "" && q.Buyer == "" {
			q.Buyer = me
		}
		if (q.Email != "" && q.Email != me) || (q.Buyer != "" && q.Buyer != me) {
			forbidden(c)
			return
		}
	}
	orders, err := h.Orders.List(c.Request.Context(), store.OrderFilter{
		SellerEmail: q.Email,
		BuyerEmail:  q.Buyer,
		Start:       q.Start,
		End:         q.End,
	})
	if err != nil {
		storeError(c, err, "list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary  One order, or null for an unknown id
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} store.Order
// @Failure  400 {object} map[string]string
// @Failure  403 {object} map[string]string
// @Router   /orders/{id} [get]
func (h *handler) GetOrder(c *gin.Context) {
	o, err := h.Orders.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		storeError(c, err, "find order")
		return
	}
	if !ownsOrder(c, o) {
		forbidden(c)
		return
	}
	c.JSON(http.StatusOK, o)
}

// MarkOrderPaid godoc
// @Summary      Record a payment
// @Description  Sets paymentStatus=paid, transactionId and paidAt. Repeating it overwrites the transaction id and paidAt.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id   path string          true "order id"
// @Param        body body MarkPaidRequest true "transaction"
// @Success      200 {object} store.UpdateAck
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /orders/{id} [put]
func (h *handler) MarkOrderPaid(c *gin.Context) {
	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, restricted := callerEmail(c); restricted {
		o, err := h.Orders.FindByID(ctx, id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			storeError(c, err, "find order")
			return
		}
		if o != nil && !owns(c, o.BuyerEmail) {
			forbidden(c)
			return
		}
	}

	ack, err := h.Orders.MarkPaid(ctx, id, req.TransactionID, h.Now())
	if err != nil {
		storeError(c, err, "mark order paid")
		return
	}
	c.JSON(http.StatusOK, ack)
}
