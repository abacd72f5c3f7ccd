package routes

import (
	"business-service/handlers"
	"business-service/middleware"
	"business-service/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the business API under /api/business
func SetupRoutes(r *gin.Engine, h *handlers.Handler, store storage.Store, adminSecret []byte) {
	api := r.Group("/api/business")

	// ── Admin routes ───────────────────────────────────────────────
	admin := api.Group("/business", middleware.AdminOnly(adminSecret)...)
	{
		admin.GET("", h.AdminListBusinesses)
		admin.PUT("/:id/status", h.AdminSetStatus)
	}

	// ── Public listings ────────────────────────────────────────────
	{
		api.GET("/all-restaurants", h.ListRestaurants)
		api.GET("/locations", h.ListLocations)
		api.GET("/categories", h.ListCategories)
		api.GET("/statuses", h.GetStatusInfo)
		api.GET("/recommended/:userId", h.GetRecommended)
	}

	// ── Owner routes ───────────────────────────────────────────────
	{
		api.POST("/add", h.RegisterBusiness)
		api.GET("/:userId", h.GetBusinessByUser)
		api.PUT("/logo/:userId", h.RequireOwnedBusiness, middleware.SingleImage(store, storage.FieldLogo), h.UpdateLogo)
		api.PUT("/:id/open", h.SetOpenState)
	}

	// ── Menu routes ────────────────────────────────────────────────
	{
		api.POST("/menu/add-items", middleware.SingleImage(store, storage.FieldProductImage), h.AddMenuItem)
		api.GET("/menu-items/:businessId", h.ListMenuItems)
	}
}
