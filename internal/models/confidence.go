package models

import (
	"errors"
	"strings"
)

// ConfidenceLevel is the qualitative certainty attached to a categorization
type ConfidenceLevel string

const (
	ConfidenceHigh         ConfidenceLevel = "high"
	ConfidenceMedium       ConfidenceLevel = "medium"
	ConfidenceLow          ConfidenceLevel = "low"
	ConfidenceUserVerified ConfidenceLevel = "user_verified"
)

// Categorization method tags recorded on a transaction
const (
	CategorizationMethodKeyword        = "keyword_rule"
	CategorizationMethodMerchant       = "merchant_rule"
	CategorizationMethodAmount         = "amount_rule"
	CategorizationMethodLLM            = "llm"
	CategorizationMethodManualRequired = "manual_required"
	CategorizationMethodManual         = "manual"
)

var ErrInvalidConfidenceLevel = errors.New("invalid confidence level")

// IsValid reports whether c is one of the known confidence levels
func (c ConfidenceLevel) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceUserVerified:
		return true
	default:
		return false
	}
}

// ParseConfidenceLevel parses a case-insensitive confidence level
func ParseConfidenceLevel(value string) (ConfidenceLevel, error) {
	level := ConfidenceLevel(strings.ToLower(strings.TrimSpace(value)))
	if !level.IsValid() {
		return "", ErrInvalidConfidenceLevel
	}
	return level, nil
}
