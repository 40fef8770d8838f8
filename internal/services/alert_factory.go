package services

import (
	"fmt"
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertFactory renders budget alerts. It never touches storage.
type AlertFactory struct {
	now func() time.Time
}

// NewAlertFactory creates an alert factory using the wall clock
func NewAlertFactory() AlertFactoryInterface {
	return NewAlertFactoryWithClock(time.Now)
}

// NewAlertFactoryWithClock creates an alert factory with an injected clock
func NewAlertFactoryWithClock(now func() time.Time) AlertFactoryInterface {
	if now == nil {
		now = time.Now
	}
	return &AlertFactory{now: now}
}

// CreateAlert builds an unread alert for budget. Unknown alert types get a generic
// update message recorded as warning_80.
func (f *AlertFactory) CreateAlert(budget *models.Budget, currentSpending decimal.Decimal, alertType models.AlertType) *models.BudgetAlert {
	alert := &models.BudgetAlert{
		ID:              uuid.New(),
		BudgetID:        budget.ID,
		UserID:          budget.UserID,
		CurrentSpending: currentSpending,
		BudgetLimit:     budget.Amount,
		CreatedAt:       f.now(),
	}

	switch alertType {
	case models.AlertTypeExceeded:
		overage := currentSpending.Sub(budget.Amount)
		alert.AlertType = models.AlertTypeExceeded
		alert.Message = fmt.Sprintf("Budget exceeded! You've spent $%s of your $%s budget ($%s over).",
			money(currentSpending), money(budget.Amount), money(overage))
	case models.AlertTypeWarning90:
		alert.AlertType = models.AlertTypeWarning90
		alert.Message = warningMessage(90, budget.RemainingAmount(currentSpending))
	case models.AlertTypeWarning80:
		alert.AlertType = models.AlertTypeWarning80
		alert.Message = warningMessage(80, budget.RemainingAmount(currentSpending))
	default:
		alert.AlertType = models.AlertTypeWarning80
		alert.Message = fmt.Sprintf("Budget update: Current spending is $%s of $%s",
			money(currentSpending), money(budget.Amount))
	}

	return alert
}

func warningMessage(percent int64, remaining decimal.Decimal) string {
	return fmt.Sprintf("Budget warning: You've used %d%% of your budget. $%s remaining.", percent, money(remaining))
}

func money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
