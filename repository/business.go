package repository

import (
	"context"
	"errors"
	"fmt"

	"business-service/models"
	"business-service/statemachine"

	"gorm.io/gorm"
)

// Businesses is the data access layer for the business table
type Businesses struct {
	db *gorm.DB
}

func NewBusinesses(db *gorm.DB) *Businesses {
	return &Businesses{db: db}
}

// Create inserts b and fills in its ID. A duplicate email is reported as
// ErrDuplicateEmail whether it is caught by the prior read or by the unique
// index on insert.
func (r *Businesses) Create(ctx context.Context, b *models.Business) error {
	if _, err := r.FindByEmail(ctx, b.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create business: %w", translate(err))
	}
	return nil
}

func (r *Businesses) FindByEmail(ctx context.Context, email string) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// FindByUserID returns the first business owned by userID
func (r *Businesses) FindByUserID(ctx context.Context, userID uint) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *Businesses) FindByID(ctx context.Context, id uint) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// List returns every business in persisted order
func (r *Businesses) List(ctx context.Context) ([]models.Business, error) {
	businesses := []models.Business{}
	if err := r.db.WithContext(ctx).Order("id").Find(&businesses).Error; err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return businesses, nil
}

// Locations returns the map projection of every business
func (r *Businesses) Locations(ctx context.Context) ([]models.BusinessLocation, error) {
	locations := []models.BusinessLocation{}
	err := r.db.WithContext(ctx).Model(&models.Business{}).
		Select("id", "business_name", "latitude", "longitude", "address").
		Order("id").
		Scan(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

// UpdateLogo sets the logo of every business owned by userID and reports
// how many rows changed.
func (r *Businesses) UpdateLogo(ctx context.Context, userID uint, logo string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Business{}).
		Where("user_id = ?", userID).
		Update("logo", logo)
	if res.Error != nil {
		return 0, fmt.Errorf("update logo: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// SetOpen updates is_open, returning ErrNotFound when id does not exist
func (r *Businesses) SetOpen(ctx context.Context, id uint, isOpen bool) error {
	res := r.db.WithContext(ctx).Model(&models.Business{}).
		Where("id = ?", id).
		Update("is_open", isOpen)
	if res.Error != nil {
		return fmt.Errorf("update open state: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus updates status without checking that id exists and reports how
// many rows changed. Values outside the admin lifecycle are rejected before
// touching the row.
func (r *Businesses) SetStatus(ctx context.Context, id uint, status models.BusinessStatus) (int64, error) {
	if err := statemachine.Validate(status); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Model(&models.Business{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return 0, fmt.Errorf("update status: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a business; its menu rows go with it through the
// foreign key cascade.
func (r *Businesses) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Business{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete business: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
