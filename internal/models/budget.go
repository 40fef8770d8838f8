package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the recurring window a budget limit applies to
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

// DefaultAlertThreshold is the spend fraction that triggers the first warning
var DefaultAlertThreshold = decimal.RequireFromString("0.80")

var (
	warning90Ratio = decimal.RequireFromString("0.90")
	exceededRatio  = decimal.NewFromInt(1)
)

var (
	ErrInvalidBudgetPeriod    = errors.New("invalid budget period")
	ErrInvalidBudgetAmount    = errors.New("budget amount must be positive")
	ErrInvalidAlertThreshold  = errors.New("alert threshold must be greater than 0 and at most 1")
	ErrBudgetCategoryRequired = errors.New("budget category is required")
	ErrBudgetUserRequired     = errors.New("budget owner is required")
)

// IsValid reports whether p is a known budget period
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	default:
		return false
	}
}

// ParseBudgetPeriod parses a case-insensitive budget period
func ParseBudgetPeriod(value string) (BudgetPeriod, error) {
	period := BudgetPeriod(strings.ToLower(strings.TrimSpace(value)))
	if !period.IsValid() {
		return "", ErrInvalidBudgetPeriod
	}
	return period, nil
}

// PeriodWindow is a half-open time range [Start, End)
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Budget is a spending limit for one category over a recurring period
type Budget struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period         BudgetPeriod    `gorm:"type:varchar(20);not null" json:"period"`
	AlertThreshold decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"alert_threshold"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	b.ApplyDefaults()

	now := time.Now()
	if b.StartDate.IsZero() {
		b.StartDate = now
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// ApplyDefaults fills the optional fields a caller left empty
func (b *Budget) ApplyDefaults() {
	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}
	if b.AlertThreshold.IsZero() {
		b.AlertThreshold = DefaultAlertThreshold
	}
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrBudgetUserRequired
	}
	if b.CategoryID == uuid.Nil {
		return ErrBudgetCategoryRequired
	}
	if !b.Amount.IsPositive() {
		return ErrInvalidBudgetAmount
	}
	if !b.Period.IsValid() {
		return ErrInvalidBudgetPeriod
	}
	if !b.AlertThreshold.IsPositive() || b.AlertThreshold.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidAlertThreshold
	}
	return nil
}

// CheckThreshold returns the most severe alert type the spending reaches.
// Checks run from most to least severe and every boundary is inclusive.
// A non-positive limit never alerts.
func (b *Budget) CheckThreshold(currentSpending decimal.Decimal) (AlertType, bool) {
	if !b.Amount.IsPositive() {
		return "", false
	}

	ratio := currentSpending.Div(b.Amount)
	switch {
	case ratio.GreaterThanOrEqual(exceededRatio):
		return AlertTypeExceeded, true
	case ratio.GreaterThanOrEqual(warning90Ratio):
		return AlertTypeWarning90, true
	case ratio.GreaterThanOrEqual(b.AlertThreshold):
		return AlertTypeWarning80, true
	default:
		return "", false
	}
}

// RemainingAmount returns the limit minus spending; negative once exceeded
func (b *Budget) RemainingAmount(currentSpending decimal.Decimal) decimal.Decimal {
	return b.Amount.Sub(currentSpending)
}

// PercentUsed returns spending as a percentage of the limit, or zero for a non-positive limit
func (b *Budget) PercentUsed(currentSpending decimal.Decimal) decimal.Decimal {
	if !b.Amount.IsPositive() {
		return decimal.Zero
	}
	return currentSpending.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(2)
}

// PeriodWindow returns the calendar window of b.Period that contains now.
// Weeks start on Monday. The window never starts before the budget's StartDate.
func (b *Budget) PeriodWindow(now time.Time) PeriodWindow {
	loc := now.Location()
	year, month, day := now.Date()

	var start, end time.Time
	switch b.Period {
	case BudgetPeriodWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		start = time.Date(year, month, day-offset, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 7)
	case BudgetPeriodQuarterly:
		firstMonth := time.Month(((int(month)-1)/3)*3 + 1)
		start = time.Date(year, firstMonth, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 3, 0)
	case BudgetPeriodYearly:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	}

	if !b.StartDate.IsZero() && b.StartDate.After(start) && b.StartDate.Before(end) {
		start = b.StartDate.In(loc)
	}

	return PeriodWindow{Start: start, End: end}
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
