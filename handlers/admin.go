package handlers

import (
	"errors"
	"net/http"

	"business-service/events"
	"business-service/models"
	"business-service/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminListBusinesses returns every business with its status (admin only)
func (h *Handler) AdminListBusinesses(c *gin.Context) {
	businesses, err := h.businesses.List(c.Request.Context())
	if err != nil {
		serverError(c, "Error fetching businesses", err)
		return
	}
	if len(businesses) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No businesses found."})
		return
	}
	c.JSON(http.StatusOK, businesses)
}

type SetStatusRequest struct {
	Status models.BusinessStatus `json:"status" binding:"required,businessstatus"`
}

// AdminSetStatus moves a business to pending, approved or rejected (admin
// only). The id is not checked for existence; an unknown id still answers 200
// but publishes nothing.
func (h *Handler) AdminSetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value."})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Business ID is required."})
		return
	}

	ctx := c.Request.Context()
	rows, err := h.businesses.SetStatus(ctx, id, req.Status)
	if errors.Is(err, statemachine.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value."})
		return
	}
	if err != nil {
		serverError(c, "Error updating business status", err)
		return
	}
	if rows > 0 {
		events.Notify(ctx, h.events, events.Event{
			Type:       events.BusinessStatusChanged,
			BusinessID: id,
			Status:     string(req.Status),
		})
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business status updated successfully."})
}
