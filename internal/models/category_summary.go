package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	CategoryID       uuid.UUID       `json:"category_id"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// AccountSummary aggregates an account's activity inside a window
type AccountSummary struct {
	AccountID        uuid.UUID         `json:"account_id"`
	Window           PeriodWindow      `json:"window"`
	TotalIncome      decimal.Decimal   `json:"total_income"`
	TotalExpenses    decimal.Decimal   `json:"total_expenses"`
	NetCashFlow      decimal.Decimal   `json:"net_cash_flow"`
	TransactionCount int64             `json:"transaction_count"`
	Categories       []CategorySummary `json:"categories"`
}

// BudgetStatus is the read model for a budget's current period
type BudgetStatus struct {
	Budget          *Budget         `json:"budget"`
	Window          PeriodWindow    `json:"window"`
	CurrentSpending decimal.Decimal `json:"current_spending"`
	Remaining       decimal.Decimal `json:"remaining"`
	PercentUsed     decimal.Decimal `json:"percent_used"`
	AlertType       *AlertType      `json:"alert_type,omitempty"`
}

// DashboardSummary is the per-user landing view
type DashboardSummary struct {
	UserID        uuid.UUID         `json:"user_id"`
	Window        PeriodWindow      `json:"window"`
	TotalIncome   decimal.Decimal   `json:"total_income"`
	TotalExpenses decimal.Decimal   `json:"total_expenses"`
	Uncategorized int64             `json:"uncategorized_count"`
	UnreadAlerts  int64             `json:"unread_alerts"`
	TopCategories []CategorySummary `json:"top_categories"`
	Budgets       []BudgetStatus    `json:"budgets"`
	GeneratedAt   time.Time         `json:"generated_at"`
}
