package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AlertType is the severity of a budget threshold crossing
type AlertType string

const (
	AlertTypeWarning80 AlertType = "warning_80"
	AlertTypeWarning90 AlertType = "warning_90"
	AlertTypeExceeded  AlertType = "exceeded"
)

var ErrInvalidAlertType = errors.New("invalid alert type")

// IsValid reports whether a is a known alert type
func (a AlertType) IsValid() bool {
	switch a {
	case AlertTypeWarning80, AlertTypeWarning90, AlertTypeExceeded:
		return true
	default:
		return false
	}
}

// Severity orders alert types; higher is worse
func (a AlertType) Severity() int {
	switch a {
	case AlertTypeWarning80:
		return 1
	case AlertTypeWarning90:
		return 2
	case AlertTypeExceeded:
		return 3
	default:
		return 0
	}
}

// ParseAlertType parses a case-insensitive alert type
func ParseAlertType(value string) (AlertType, error) {
	alertType := AlertType(strings.ToLower(strings.TrimSpace(value)))
	if !alertType.IsValid() {
		return "", ErrInvalidAlertType
	}
	return alertType, nil
}

// BudgetAlert is created once per threshold crossing and never updated in place,
// apart from IsRead which belongs to whoever delivers it.
type BudgetAlert struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BudgetID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"budget_id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AlertType       AlertType       `gorm:"type:varchar(20);not null" json:"alert_type"`
	Message         string          `gorm:"type:text;not null" json:"message"`
	CurrentSpending decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"current_spending"`
	BudgetLimit     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"budget_limit"`
	IsRead          bool            `gorm:"not null;default:false" json:"is_read"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for BudgetAlert
func (a *BudgetAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for BudgetAlert
func (a *BudgetAlert) TableName() string {
	return "budget_alerts"
}
