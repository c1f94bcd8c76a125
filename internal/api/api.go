// Package api binds the MediShop REST surface to the repositories.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "medishop-server/docs"
	"medishop-server/internal/auth"
	"medishop-server/internal/httpx"
	"medishop-server/internal/store"
)

const readyMessage = "MediShop Server Is Running!"

type handler struct {
	Deps
}

// API builds the router. Route groups carry the auth guard; a disabled guard
// is a pass-through.
func API(d Deps, corsOrigins []string) *gin.Engine {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Guard == nil {
		d.Guard = auth.NewGuard(d.Tokens, false)
	}
	httpx.RegisterValidators()
	h := &handler{Deps: d}

	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery(), httpx.CORS(corsOrigins))

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, readyMessage) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.POST("/jwt", h.IssueToken)
	r.GET("/cats", h.ListCategories)
	r.GET("/medicine", h.ListMedicines)
	r.GET("/medicine/:name", h.ListMedicinesByCategory)

	// Buyer
	buyer := r.Group("", d.Guard.Require())
	{
		buyer.GET("/cart", h.GetCart)
		buyer.POST("/cart", h.AddToCart)
		buyer.PATCH("/cart/:id", h.AdjustCartItem)
		buyer.DELETE("/cart", h.RemoveCart)

		buyer.GET("/orders", h.ListOrders)
		buyer.POST("/orders", h.CreateOrder)
		buyer.GET("/orders/:id", h.GetOrder)
		buyer.PUT("/orders/:id", h.MarkOrderPaid)

		buyer.POST("/create-payment-intent", h.CreatePaymentIntent)
	}

	// Seller
	seller := r.Group("", d.Guard.Require(store.RoleSeller, store.RoleAdmin))
	{
		seller.POST("/ads", h.CreateAd)
		seller.GET("/ads", h.ListAdsByOwner)
		seller.DELETE("/ads/:id", h.DeleteAd)
		seller.POST("/medicine", h.CreateMedicine)
	}

	// Admin
	admin := r.Group("", d.Guard.Require(store.RoleAdmin))
	{
		admin.GET("/all-ads", h.ListActionableAds)
		admin.PATCH("/ads/status", h.SetAdStatus)

		admin.POST("/cats", h.CreateCategory)
		admin.PATCH("/cats/:id", h.UpdateCategory)
		admin.DELETE("/cats/:id", h.DeleteCategory)
		admin.POST("/cats/recount", h.RecountCategories)
	}

	return r
}
