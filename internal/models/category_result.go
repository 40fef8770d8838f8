package models

import "github.com/google/uuid"

// CategoryResult is the outcome of running a transaction through a strategy or
// the categorization chain. It is never persisted on its own.
//
// RequiresManual is true exactly when CategoryID is nil.
type CategoryResult struct {
	CategoryID     *uuid.UUID      `json:"category_id"`
	Confidence     ConfidenceLevel `json:"confidence"`
	Method         string          `json:"method"`
	RequiresManual bool            `json:"requires_manual"`
}

// NewMatchResult builds a result for a successful match
func NewMatchResult(categoryID uuid.UUID, confidence ConfidenceLevel, method string) *CategoryResult {
	id := categoryID
	return &CategoryResult{
		CategoryID: &id,
		Confidence: confidence,
		Method:     method,
	}
}

// NewManualResult builds the terminal result handed out when nothing matched
func NewManualResult() *CategoryResult {
	return &CategoryResult{
		Confidence:     ConfidenceLow,
		Method:         CategorizationMethodManualRequired,
		RequiresManual: true,
	}
}

// IsMatch reports whether the result carries a category
func (r *CategoryResult) IsMatch() bool {
	return r != nil && r.CategoryID != nil
}
