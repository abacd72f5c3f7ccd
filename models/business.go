package models

import "time"

// BusinessStatus is the admin-controlled lifecycle stage of a business
type BusinessStatus string

const (
	StatusPending  BusinessStatus = "pending"
	StatusApproved BusinessStatus = "approved"
	StatusRejected BusinessStatus = "rejected"
)

type Business struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	BusinessName  string         `json:"businessName" gorm:"size:100;not null"`
	OwnerFullName string         `json:"ownerFullName" gorm:"size:100;not null"`
	Address       string         `json:"address" gorm:"size:255;not null"`
	Email         string         `json:"email" gorm:"size:100;uniqueIndex;not null"`
	BusinessType  string         `json:"businessType" gorm:"size:50;not null"`
	Phone         string         `json:"phone" gorm:"size:20;not null"`
	Logo          string         `json:"logo" gorm:"size:255"`
	UserID        uint           `json:"userId" gorm:"index;not null"`
	Status        BusinessStatus `json:"status" gorm:"size:16;not null;default:'pending'"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	Categories    Categories     `json:"categories" gorm:"type:text"`
	IsOpen        bool           `json:"isOpen" gorm:"not null;default:false"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Business) TableName() string { return "business" }

// MenuItem is a product sold by one business. BusinessName is copied from the
// business at creation and is not kept in sync afterwards.
type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Category     string    `json:"category" gorm:"size:100;not null"`
	BusinessID   uint      `json:"businessId" gorm:"index;not null"`
	Business     *Business `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	BusinessName string    `json:"businessName" gorm:"size:100;not null"`
	ProductName  string    `json:"productName" gorm:"size:100;not null"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image" gorm:"size:255"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (MenuItem) TableName() string { return "menu" }

// CuisineCategory is a static lookup row used to populate category pickers.
// Business.Categories holds names from this table but is not a foreign key.
type CuisineCategory struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CategoryType string `json:"categoryType" gorm:"size:50;not null"`
	Name         string `json:"name" gorm:"size:100;not null"`
}

func (CuisineCategory) TableName() string { return "cuisine_category" }

// BusinessLocation is the map projection of a business
type BusinessLocation struct {
	ID           uint    `json:"id"`
	BusinessName string  `json:"businessName"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
}
