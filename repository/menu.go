package repository

import (
	"context"
	"fmt"

	"business-service/models"

	"gorm.io/gorm"
)

// MenuItems is the data access layer for the menu table
type MenuItems struct {
	db *gorm.DB
}

func NewMenuItems(db *gorm.DB) *MenuItems {
	return &MenuItems{db: db}
}

func (r *MenuItems) Create(ctx context.Context, item *models.MenuItem) error {
	if err := r.db.WithContext(ctx).Omit("Business").Create(item).Error; err != nil {
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

// ListByBusiness returns the menu of one business in insertion order
func (r *MenuItems) ListByBusiness(ctx context.Context, businessID uint) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}
