package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCategoryNameRequired = errors.New("category name is required")

// Category is a spending or income bucket. Categories may nest one level under a parent.
type Category struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name             string     `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	ParentCategoryID *uuid.UUID `gorm:"type:uuid;index" json:"parent_category_id,omitempty"`
	Icon             string     `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Color            string     `gorm:"type:varchar(20)" json:"color,omitempty"`
	IsSystem         bool       `gorm:"not null;default:false" json:"is_system"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// System category names seeded on first start
const (
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryTravel         = "Travel"
	CategoryIncome         = "Income"
	CategoryOther          = "Other"
)

// SystemCategories returns the default category set
func SystemCategories() []Category {
	names := []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryTravel,
		CategoryIncome,
		CategoryOther,
	}

	categories := make([]Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, Category{Name: name, IsSystem: true})
	}
	return categories
}
