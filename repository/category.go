package repository

import (
	"context"
	"fmt"

	"business-service/models"

	"gorm.io/gorm"
)

// CuisineCategories reads the static category catalogue
type CuisineCategories struct {
	db *gorm.DB
}

func NewCuisineCategories(db *gorm.DB) *CuisineCategories {
	return &CuisineCategories{db: db}
}

func (r *CuisineCategories) List(ctx context.Context) ([]models.CuisineCategory, error) {
	categories := []models.CuisineCategory{}
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list cuisine categories: %w", err)
	}
	return categories, nil
}
