package handlers

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"business-service/middleware"
	"business-service/models"
	"business-service/repository"

	"github.com/gin-gonic/gin"
)

// ── Menu Management ─────────────────────────────────────────────────────────

type AddMenuItemRequest struct {
	UserID      uint    `form:"userId" json:"userId" binding:"required"`
	Category    string  `form:"category" json:"category" binding:"required"`
	ProductName string  `form:"productName" json:"productName" binding:"required"`
	Price       float64 `form:"price" json:"price" binding:"required,gte=0"`
	Description string  `form:"description" json:"description"`
}

// menuItemView is the public shape of a menu row
type menuItemView struct {
	ID          uint    `json:"id"`
	Category    string  `json:"category"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// AddMenuItem adds a product to the menu of the user's business
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields.", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	business, err := h.businesses.FindByUserID(ctx, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business not found."})
		return
	}
	if err != nil {
		serverError(c, "Error adding product", err)
		return
	}

	item := models.MenuItem{
		Category:     req.Category,
		BusinessID:   business.ID,
		BusinessName: business.BusinessName,
		ProductName:  req.ProductName,
		Price:        roundCents(req.Price),
	}
	if d := strings.TrimSpace(req.Description); d != "" {
		item.Description = &d
	}
	if url, ok := middleware.UploadedURL(c); ok {
		item.Image = &url
	}

	if err := h.menu.Create(ctx, &item); err != nil {
		serverError(c, "Error adding product", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully.",
		"id":      item.ID,
		"image":   item.Image,
	})
}

// roundCents matches the decimal(10,2) column on engines that store floats
func roundCents(price float64) float64 {
	return math.Round(price*100) / 100
}

// ListMenuItems returns the menu of a business
func (h *Handler) ListMenuItems(c *gin.Context) {
	businessID, ok := parseID(c, "businessId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Business ID is required."})
		return
	}

	items, err := h.menu.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		serverError(c, "Error fetching menu items", err)
		return
	}
	views := make([]menuItemView, 0, len(items))
	for _, it := range items {
		views = append(views, menuItemView{
			ID:          it.ID,
			Category:    it.Category,
			ProductName: it.ProductName,
			Price:       it.Price,
			Description: it.Description,
			Image:       it.Image,
		})
	}
	c.JSON(http.StatusOK, views)
}
