package dto

import (
	"time"

	"budget-watch/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest records a transaction on one of the caller's accounts.
// Negative amounts are expenses, positive amounts are income.
type CreateTransactionRequest struct {
	AccountID       string     `json:"accountId" validate:"required,uuid"`
	Amount          string     `json:"amount" validate:"required,money"`
	Description     string     `json:"description" validate:"required,min=1,max=500"`
	MerchantName    string     `json:"merchantName" validate:"omitempty,max=255"`
	TransactionDate *time.Time `json:"transactionDate"`
	IsRecurring     bool       `json:"isRecurring"`
}

// UpdateTransactionRequest changes the descriptive fields of a transaction. Nil fields are left alone.
type UpdateTransactionRequest struct {
	Amount          *string    `json:"amount" validate:"omitempty,money"`
	Description     *string    `json:"description" validate:"omitempty,min=1,max=500"`
	MerchantName    *string    `json:"merchantName" validate:"omitempty,max=255"`
	TransactionDate *time.Time `json:"transactionDate"`
	IsRecurring     *bool      `json:"isRecurring"`
}

// OverrideCategoryRequest assigns a category by hand
type OverrideCategoryRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid"`
}

// CategorizePreviewRequest runs the categorization chain without persisting anything
type CategorizePreviewRequest struct {
	Amount       string `json:"amount" validate:"required,money"`
	Description  string `json:"description" validate:"required,min=1,max=500"`
	MerchantName string `json:"merchantName" validate:"omitempty,max=255"`
}

// TransactionListQuery holds the query string of a transaction listing
type TransactionListQuery struct {
	StartDate     string `query:"startDate"`
	EndDate       string `query:"endDate"`
	CategoryID    string `query:"categoryId"`
	Uncategorized bool   `query:"uncategorized"`
	Merchant      string `query:"merchant"`
	Offset        int    `query:"offset"`
	Limit         int    `query:"limit"`
}

// Transaction Response DTOs

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}

// CategorizePreviewResponse is the outcome of a dry-run categorization
type CategorizePreviewResponse struct {
	Result       *models.CategoryResult `json:"result"`
	RulesVersion uint64                 `json:"rulesVersion"`
}
