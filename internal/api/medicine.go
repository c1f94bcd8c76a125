package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/httpx"
	"medishop-server/internal/store"
)

// NewMedicineRequest swagger:model NewMedicineRequest
type NewMedicineRequest struct {
	Name        string  `json:"name" binding:"required" example:"Napa 500mg"`
	GenericName string  `json:"genericName"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category" binding:"required" example:"Tablet"`
	Company     string  `json:"company"`
	MassUnit    string  `json:"massUnit"`
	Price       float64 `json:"price" binding:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
	SellerEmail string  `json:"sellerEmail" binding:"required,email"`
}

// ListMedicines godoc
// @Summary  All medicines, or one seller's
// @Tags     medicine
// @Produce  json
// @Param    email query string false "seller email"
// @Success  200 {array} store.Medicine
// @Router   /medicine [get]
func (h *handler) ListMedicines(c *gin.Context) {
	meds, err := h.Medicines.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		storeError(c, err, "list medicines")
		return
	}
	c.JSON(http.StatusOK, meds)
}

// ListMedicinesByCategory godoc
// @Summary  Medicines of one category
// @Tags     medicine
// @Produce  json
// @Param    name path string true "category name"
// @Success  200 {array} store.Medicine
// @Router   /medicine/{name} [get]
func (h *handler) ListMedicinesByCategory(c *gin.Context) {
	meds, err := h.Medicines.ListByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		storeError(c, err, "list medicines by category")
		return
	}
	c.JSON(http.StatusOK, meds)
}

// CreateMedicine godoc
// @Summary      Add a medicine and bump its category counter
// @Description  The two writes are not atomic: a failed bump is logged and left for POST /cats/recount.
// @Tags         medicine
// @Accept       json
// @Produce      json
// @Param        body body NewMedicineRequest true "medicine"
// @Success      200 {object} store.InsertAck
// @Failure      400 {object} map[string]string
// @Router       /medicine [post]
func (h *handler) CreateMedicine(c *gin.Context) {
	var req NewMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	m := store.Medicine{
		Name:        req.Name,
		GenericName: req.GenericName,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Company:     req.Company,
		MassUnit:    req.MassUnit,
		Price:       req.Price,
		Discount:    req.Discount,
		SellerEmail: req.SellerEmail,
		CreatedAt:   h.Now().UTC(),
	}
	ack, err := h.Medicines.Insert(ctx, &m)
	if err != nil {
		storeError(c, err, "insert medicine")
		return
	}

	if _, err := h.Categories.IncrementCount(ctx, m.Category, 1); err != nil {
		slog.Warn("category counter not incremented",
			slog.String(httpx.TraceIDKey, httpx.TraceID(c)),
			slog.String("category", m.Category),
			slog.String("error", err.Error()),
		)
	}
	c.JSON(http.StatusOK, ack)
}
