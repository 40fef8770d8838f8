package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RuleType selects which strategy a rule feeds
type RuleType string

const (
	RuleTypeKeyword     RuleType = "keyword"
	RuleTypeMerchant    RuleType = "merchant"
	RuleTypeAmountRange RuleType = "amount_range"
)

var (
	ErrInvalidRuleType     = errors.New("invalid rule type")
	ErrRulePatternRequired = errors.New("rule pattern is required")
	ErrRuleCategoryMissing = errors.New("rule category is required")
	ErrInvalidAmountRange  = errors.New("amount range requires 0 <= min <= max")
)

// IsValid reports whether t is a known rule type
func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypeKeyword, RuleTypeMerchant, RuleTypeAmountRange:
		return true
	default:
		return false
	}
}

// ParseRuleType parses a case-insensitive rule type
func ParseRuleType(value string) (RuleType, error) {
	ruleType := RuleType(strings.ToLower(strings.TrimSpace(value)))
	if !ruleType.IsValid() {
		return "", ErrInvalidRuleType
	}
	return ruleType, nil
}

// CategorizationRule is the declarative source strategies are loaded from
type CategorizationRule struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	RuleName   string           `gorm:"type:varchar(100)" json:"rule_name"`
	RuleType   RuleType         `gorm:"type:varchar(20);not null;index" json:"rule_type"`
	Pattern    string           `gorm:"type:varchar(255)" json:"pattern,omitempty"`
	MinAmount  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"min_amount,omitempty"`
	MaxAmount  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"max_amount,omitempty"`
	CategoryID uuid.UUID        `gorm:"type:uuid;not null" json:"category_id"`
	Priority   int              `gorm:"not null;default:0;index" json:"priority"`
	IsActive   bool             `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CategorizationRule
func (r *CategorizationRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for CategorizationRule
func (r *CategorizationRule) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate checks the rule is usable by its strategy
func (r *CategorizationRule) Validate() error {
	if !r.RuleType.IsValid() {
		return ErrInvalidRuleType
	}

	if r.CategoryID == uuid.Nil {
		return ErrRuleCategoryMissing
	}

	if r.RuleType == RuleTypeAmountRange {
		if r.MinAmount == nil || r.MaxAmount == nil {
			return ErrInvalidAmountRange
		}
		if r.MinAmount.IsNegative() || r.MinAmount.GreaterThan(*r.MaxAmount) {
			return ErrInvalidAmountRange
		}
		return nil
	}

	if strings.TrimSpace(r.Pattern) == "" {
		return ErrRulePatternRequired
	}

	return nil
}

// Matches evaluates this single rule against a transaction. Inactive rules never match.
func (r *CategorizationRule) Matches(t *Transaction) bool {
	if t == nil || !r.IsActive {
		return false
	}

	switch r.RuleType {
	case RuleTypeKeyword:
		return strings.Contains(strings.ToLower(t.Description), strings.ToLower(r.Pattern))
	case RuleTypeMerchant:
		return strings.Contains(strings.ToLower(t.MerchantName), strings.ToLower(r.Pattern))
	case RuleTypeAmountRange:
		if r.MinAmount == nil || r.MaxAmount == nil {
			return false
		}
		amount := t.Amount.Abs()
		return amount.GreaterThanOrEqual(*r.MinAmount) && amount.LessThanOrEqual(*r.MaxAmount)
	default:
		return false
	}
}

// TableName returns the table name for CategorizationRule
func (r *CategorizationRule) TableName() string {
	return "categorization_rules"
}
