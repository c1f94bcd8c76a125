package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/store"
)

// NewAdRequest swagger:model NewAdRequest
type NewAdRequest struct {
	Email        string `json:"email" binding:"required,email" example:"seller@medishop.com"`
	MedicineName string `json:"medicineName" example:"Napa 500mg"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	Status       string `json:"status" example:"pending"`
}

// AdStatusRequest swagger:model AdStatusRequest
type AdStatusRequest struct {
	ID     string `json:"id" binding:"required,objectid" example:"65f1c0ffee0123456789abcd"`
	Status string `json:"status" binding:"required" example:"active"`
}

// CreateAd godoc
// @Summary  Submit an advertisement
// @Tags     ads
// @Accept   json
// @Produce  json
// @Param    body body NewAdRequest true "ad; status defaults to pending"
// @Success  200 {object} store.InsertAck
// @Failure  400 {object} map[string]string
// @Router   /ads [post]
func (h *handler) CreateAd(c *gin.Context) {
	var req NewAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ad := store.Ad{
		Email:        req.Email,
		MedicineName: req.MedicineName,
		Image:        req.Image,
		Description:  req.Description,
		Status:       req.Status,
		CreatedAt:    h.Now().UTC(),
	}
	if ad.Status == "" {
		ad.Status = store.AdPending
	}
	ack, err := h.Ads.Insert(c.Request.Context(), &ad)
	if err != nil {
		storeError(c, err, "insert ad")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// ListActionableAds godoc
// @Summary  Admin queue: pending and active ads
// @Tags     ads
// @Produce  json
// @Success  200 {array} store.Ad
// @Router   /all-ads [get]
func (h *handler) ListActionableAds(c *gin.Context) {
	ads, err := h.Ads.ListByStatus(c.Request.Context(), store.AdPending, store.AdActive)
	if err != nil {
		storeError(c, err, "list ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

// ListAdsByOwner godoc
// @Summary  Ads of one seller
// @Tags     ads
// @Produce  json
// @Param    email query string true "owner email"
// @Success  200 {array}  store.Ad
// @Failure  400 {object} map[string]string
// @Router   /ads [get]
func (h *handler) ListAdsByOwner(c *gin.Context) {
	var q struct {
		Email string `form:"email" binding:"required,email"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	ads, err := h.Ads.ListByOwner(c.Request.Context(), q.Email)
	if err != nil {
		storeError(c, err, "list ads by owner")
		return
	}
	c.JSON(http.StatusOK, ads)
}

// SetAdStatus godoc
// @Summary  Overwrite an ad's status
// @Tags     ads
// @Accept   json
// @Produce  json
// @Param    body body AdStatusRequest true "id and status"
// @Success  200 {object} store.UpdateAck
// @Failure  400 {object} map[string]string
// @Router   /ads/status [patch]
func (h *handler) SetAdStatus(c *gin.Context) {
	var req AdStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ack, err := h.Ads.SetStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		storeError(c, err, "set ad status")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// DeleteAd godoc
// @Summary  Delete an ad
// @Tags     ads
// @Produce  json
// @Param    id path string true "ad id"
// @Success  200 {object} store.DeleteAck
// @Failure  400 {object} map[string]string
// @Router   /ads/{id} [delete]
func (h *handler) DeleteAd(c *gin.Context) {
	ack, err := h.Ads.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "delete ad")
		return
	}
	c.JSON(http.StatusOK, ack)
}
