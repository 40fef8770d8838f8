package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount            = errors.New("transaction amount must be non-zero")
	ErrAccountIDRequired        = errors.New("account ID is required")
	ErrIncompleteCategorization = errors.New("categorized transaction must carry confidence and method")
	ErrNilCategoryResult        = errors.New("category result cannot be nil")
	ErrDescriptionTooLong       = errors.New("transaction description too long")
)

const maxTransactionDescriptionLen = 500

// Transaction is a financial transaction observed on an account.
// Negative amounts are expenses, positive amounts are income.
type Transaction struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount               decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description          string          `gorm:"type:text" json:"description"`
	MerchantName         string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	CategoryID           *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Confidence           ConfidenceLevel `gorm:"type:varchar(20)" json:"confidence,omitempty"`
	CategorizationMethod string          `gorm:"type:varchar(30)" json:"categorization_method,omitempty"`
	TransactionDate      time.Time       `gorm:"not null;index" json:"transaction_date"`
	IsRecurring          bool            `gorm:"not null;default:false" json:"is_recurring"`
	CreatedAt            time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.TransactionDate.IsZero() {
		t.TransactionDate = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrAccountIDRequired
	}

	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}

	if len(t.Description) > maxTransactionDescriptionLen {
		return ErrDescriptionTooLong
	}

	if t.CategoryID != nil && (!t.Confidence.IsValid() || t.CategorizationMethod == "") {
		return ErrIncompleteCategorization
	}

	return nil
}

// IsExpense returns true for outgoing money
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome returns true for incoming money
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsCategorized returns true once a category has been assigned
func (t *Transaction) IsCategorized() bool {
	return t.CategoryID != nil
}

// IsUserVerified returns true when a person picked the category
func (t *Transaction) IsUserVerified() bool {
	return t.Confidence == ConfidenceUserVerified
}

// OwnerID returns the owning user. It is only known once Account has been loaded.
func (t *Transaction) OwnerID() uuid.UUID {
	return t.Account.UserID
}

// ApplyCategorization copies a chain result onto the transaction.
// Category, confidence and method are always written together.
func (t *Transaction) ApplyCategorization(result *CategoryResult) error {
	if result == nil {
		return ErrNilCategoryResult
	}

	var categoryID *uuid.UUID
	if result.CategoryID != nil {
		id := *result.CategoryID
		categoryID = &id
	}

	t.CategoryID = categoryID
	t.Confidence = result.Confidence
	t.CategorizationMethod = result.Method
	return nil
}

// AssignManualCategory records a category chosen by the owner
func (t *Transaction) AssignManualCategory(categoryID uuid.UUID) {
	id := categoryID
	t.CategoryID = &id
	t.Confidence = ConfidenceUserVerified
	t.CategorizationMethod = CategorizationMethodManual
}

// ClearCategorization drops every classification field at once
func (t *Transaction) ClearCategorization() {
	t.CategoryID = nil
	t.Confidence = ""
	t.CategorizationMethod = ""
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
