package services

import (
	"budget-watch/internal/models"

	"github.com/shopspring/decimal"
)

// EvaluateThreshold returns the most severe alert the spending reaches for budget.
// A nil budget or a non-positive limit never alerts.
func EvaluateThreshold(budget *models.Budget, currentSpending decimal.Decimal) (models.AlertType, bool) {
	if budget == nil {
		return "", false
	}
	return budget.CheckThreshold(currentSpending)
}
