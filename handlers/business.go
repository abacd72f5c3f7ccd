package handlers

import (
	"errors"
	"log"
	"net/http"

	"business-service/events"
	"business-service/middleware"
	"business-service/models"
	"business-service/repository"
	"business-service/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Registration & Owner Lookup ─────────────────────────────────────────────

type RegisterBusinessRequest struct {
	BusinessName string   `json:"businessName" binding:"required"`
	FullName     string   `json:"fullName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	BusinessType string   `json:"businessType" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Latitude     float64  `json:"latitude" binding:"required"`
	Longitude    float64  `json:"longitude" binding:"required"`
	UserID       uint     `json:"userId" binding:"required"`
	Logo         string   `json:"logo"`
	Categories   []string `json:"categories"`
}

// RegisterBusiness creates a pending business for a user
func (h *Handler) RegisterBusiness(c *gin.Context) {
	var req RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required.", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	// a taken email wins over a missing category list
	if _, err := h.businesses.FindByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already exists."})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "Error checking email", err)
		return
	}
	if len(req.Categories) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Categories are required."})
		return
	}

	logo := req.Logo
	if logo == "" {
		logo = h.defaultLogoURL
	}
	business := models.Business{
		BusinessName:  req.BusinessName,
		OwnerFullName: req.FullName,
		Email:         req.Email,
		BusinessType:  req.BusinessType,
		Phone:         req.Phone,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		UserID:        req.UserID,
		Logo:          logo,
		Status:        statemachine.InitialStatus(),
		Categories:    models.Categories(req.Categories),
	}

	if err := h.businesses.Create(ctx, &business); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists."})
			return
		}
		serverError(c, "Error creating restaurant", err)
		return
	}

	events.Notify(ctx, h.events, events.Event{
		Type:       events.BusinessRegistered,
		BusinessID: business.ID,
		UserID:     business.UserID,
		Status:     string(business.Status),
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant registered.", "id": business.ID})
}

// GetBusinessByUser returns the business owned by a user
func (h *Handler) GetBusinessByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required."})
		return
	}

	business, err := h.businesses.FindByUserID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business not found."})
		return
	}
	if err != nil {
		serverError(c, "Error fetching business", err)
		return
	}
	c.JSON(http.StatusOK, business)
}

// ── Owner Updates ───────────────────────────────────────────────────────────

const ownedBusinessKey = "ownedBusiness"

// RequireOwnedBusiness resolves the business of the :userId path parameter
// before anything is uploaded, so rejected requests leave no file behind.
func (h *Handler) RequireOwnedBusiness(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "User ID is required."})
		return
	}
	business, err := h.businesses.FindByUserID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Business not found."})
		return
	}
	if err != nil {
		log.Printf("Error fetching business: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.Set(ownedBusinessKey, business)
	c.Next()
}

// UpdateLogo stores the URL produced by the upload middleware as the logo
func (h *Handler) UpdateLogo(c *gin.Context) {
	logo, ok := middleware.UploadedURL(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image uploaded."})
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required."})
		return
	}

	if _, err := h.businesses.UpdateLogo(c.Request.Context(), userID, logo); err != nil {
		log.Printf("Error updating logo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating logo."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logo updated successfully.", "logo": logo})
}

type SetOpenStateRequest struct {
	IsOpen *bool `json:"isOpen" binding:"required"`
}

// SetOpenState opens or closes a business
func (h *Handler) SetOpenState(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Business ID is required."})
		return
	}
	var req SetOpenStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isOpen must be true or false.", "error": err.Error()})
		return
	}

	err := h.businesses.SetOpen(c.Request.Context(), id, *req.IsOpen)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business not found."})
		return
	}
	if err != nil {
		serverError(c, "Error updating business open state", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business open state updated."})
}
