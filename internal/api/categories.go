package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/httpx"
	"medishop-server/internal/store"
)

// NewCategoryRequest swagger:model NewCategoryRequest
type NewCategoryRequest struct {
	CategoryName  string `json:"categoryName" binding:"required" example:"Tablet"`
	CategoryImage string `json:"categoryImage"`
	MedicineCount int    `json:"medicineCount" binding:"min=0"`
}

// ListCategories godoc
// @Summary  All categories
// @Tags     categories
// @Produce  json
// @Success  200 {array} store.Category
// @Router   /cats [get]
func (h *handler) ListCategories(c *gin.Context) {
	cats, err := h.Categories.List(c.Request.Context())
	if err != nil {
		storeError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// CreateCategory godoc
// @Summary  Create a category
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    body body NewCategoryRequest true "category"
// @Success  200 {object} store.InsertAck
// @Failure  400 {object} map[string]string
// @Router   /cats [post]
func (h *handler) CreateCategory(c *gin.Context) {
	var req NewCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ack, err := h.Categories.Insert(c.Request.Context(), &store.Category{
		CategoryName:  req.CategoryName,
		CategoryImage: req.CategoryImage,
		MedicineCount: req.MedicineCount,
	})
	if err != nil {
		storeError(c, err, "insert category")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// UpdateCategory godoc
// @Summary  Set only the submitted category fields
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    id   path string              true "category id"
// @Param    body body store.CategoryPatch true "fields to set"
// @Success  200 {object} store.UpdateAck
// @Failure  400 {object} map[string]string
// @Router   /cats/{id} [patch]
func (h *handler) UpdateCategory(c *gin.Context) {
	var patch store.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	ack, err := h.Categories.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		storeError(c, err, "update category")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// DeleteCategory godoc
// @Summary  Delete a category
// @Tags     categories
// @Produce  json
// @Param    id path string true "category id"
// @Success  200 {object} store.DeleteAck
// @Failure  400 {object} map[string]string
// @Router   /cats/{id} [delete]
func (h *handler) DeleteCategory(c *gin.Context) {
	ack, err := h.Categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "delete category")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// RecountCategories godoc
// @Summary      Rebuild every medicineCount from the medicine collection
// @Description  Medicine creation only ever increments the counter; this repairs drift.
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]int
// @Router       /cats/recount [post]
func (h *handler) RecountCategories(c *gin.Context) {
	ctx := c.Request.Context()
	counts, err := h.Medicines.CountByCategory(ctx)
	if err != nil {
		storeError(c, err, "count medicines")
		return
	}
	cats, err := h.Categories.List(ctx)
	if err != nil {
		storeError(c, err, "list categories")
		return
	}

	updated := 0
	for _, cat := range cats {
		ack, err := h.Categories.SetCount(ctx, cat.CategoryName, counts[cat.CategoryName])
		if err != nil {
			storeError(c, err, "set category count")
			return
		}
		updated += int(ack.ModifiedCount)
	}
	slog.Info("categories recounted", slog.String(httpx.TraceIDKey, httpx.TraceID(c)), slog.Int("updated", updated))
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
