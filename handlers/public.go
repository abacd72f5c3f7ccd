package handlers

import (
	"log"
	"net/http"

	"business-service/recommend"
	"business-service/statemachine"

	"github.com/gin-gonic/gin"
)

// GetRecommended ranks restaurants against the user's stored preferences.
// If the user service cannot be reached the user is treated as having no
// preferences.
func (h *Handler) GetRecommended(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required."})
		return
	}

	ctx := c.Request.Context()
	prefs, err := h.prefs.Categories(ctx, userID)
	if err != nil {
		log.Printf("User-service unavailable or error (%v). Fetching fallback recommendations.", err)
		prefs = nil
	}

	businesses, err := h.businesses.List(ctx)
	if err != nil {
		serverError(c, "Error fetching recommended restaurants", err)
		return
	}
	c.JSON(http.StatusOK, recommend.Rank(businesses, prefs))
}

// ListRestaurants returns every business (public)
func (h *Handler) ListRestaurants(c *gin.Context) {
	businesses, err := h.businesses.List(c.Request.Context())
	if err != nil {
		serverError(c, "Error fetching all restaurants", err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// ListLocations returns id, name, coordinates and address of every business
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.businesses.Locations(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching business locations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get business locations"})
		return
	}
	c.JSON(http.StatusOK, locations)
}

// ListCategories returns the cuisine catalogue, flat and grouped by type
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		serverError(c, "Error fetching cuisine categories", err)
		return
	}
	grouped := map[string][]string{}
	for _, cat := range categories {
		grouped[cat.CategoryType] = append(grouped[cat.CategoryType], cat.Name)
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
		"grouped":    grouped,
	})
}

// GetStatusInfo describes the admin lifecycle for docs and admin UIs
func (h *Handler) GetStatusInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":    statemachine.AllStages(),
		"initial":     statemachine.InitialStatus(),
		"description": "Business approval lifecycle; admins may set any status at any time",
	})
}
