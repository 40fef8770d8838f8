package dto

import (
	"time"

	"budget-watch/internal/models"
)

// CreateBudgetRequest creates a spending limit for one category
type CreateBudgetRequest struct {
	CategoryID     string     `json:"categoryId" validate:"required,uuid"`
	Amount         string     `json:"amount" validate:"required,positive_money"`
	Period         string     `json:"period" validate:"omitempty,budget_period"`
	AlertThreshold *string    `json:"alertThreshold" validate:"omitempty,fraction"`
	StartDate      *time.Time `json:"startDate"`
}

// UpdateBudgetRequest changes a budget's limit, period or threshold
type UpdateBudgetRequest struct {
	Amount         *string `json:"amount" validate:"omitempty,positive_money"`
	Period         *string `json:"period" validate:"omitempty,budget_period"`
	AlertThreshold *string `json:"alertThreshold" validate:"omitempty,fraction"`
}

// ListAlertsResponse represents a page of budget alerts
type ListAlertsResponse struct {
	Alerts      []models.BudgetAlert `json:"alerts"`
	UnreadCount int64                `json:"unreadCount"`
	Pagination  PaginationInfo       `json:"pagination"`
}
