package services_test

import (
	"testing"

	"budget-watch/internal/models"
	"budget-watch/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ThresholdTestSuite struct {
	suite.Suite
	budget *models.Budget
}

func TestThresholdSuite(t *testing.T) {
	suite.Run(t, new(ThresholdTestSuite))
}

func (s *ThresholdTestSuite) SetupTest() {
	s.budget = &models.Budget{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		CategoryID:     uuid.New(),
		Amount:         decimal.NewFromInt(500),
		Period:         models.BudgetPeriodMonthly,
		AlertThreshold: models.DefaultAlertThreshold,
	}
}

func (s *ThresholdTestSuite) TestEvaluateThreshold_Boundaries() {
	testCases := []struct {
		spending  string
		alertType models.AlertType
		crossed   bool
	}{
		{"0", "", false},
		{"399.99", "", false},
		{"400", models.AlertTypeWarning80, true},
		{"449.99", models.AlertTypeWarning80, true},
		{"450", models.AlertTypeWarning90, true},
		{"499.99", models.AlertTypeWarning90, true},
		{"500", models.AlertTypeExceeded, true},
		{"800", models.AlertTypeExceeded, true},
	}

	for _, tc := range testCases {
		s.Run(tc.spending, func() {
			alertType, crossed := services.EvaluateThreshold(s.budget, decimal.RequireFromString(tc.spending))
			s.Equal(tc.crossed, crossed)
			s.Equal(tc.alertType, alertType)
		})
	}
}

func (s *ThresholdTestSuite) TestEvaluateThreshold_CustomFirstThreshold() {
	s.budget.AlertThreshold = decimal.RequireFromString("0.50")

	alertType, crossed := services.EvaluateThreshold(s.budget, decimal.NewFromInt(250))

	s.True(crossed)
	s.Equal(models.AlertTypeWarning80, alertType)
}

func (s *ThresholdTestSuite) TestEvaluateThreshold_NonPositiveLimitNeverAlerts() {
	s.budget.Amount = decimal.Zero

	_, crossed := services.EvaluateThreshold(s.budget, decimal.NewFromInt(1000))

	s.False(crossed)
}

func (s *ThresholdTestSuite) TestEvaluateThreshold_NilBudget() {
	alertType, crossed := services.EvaluateThreshold(nil, decimal.NewFromInt(10))

	s.False(crossed)
	s.Empty(alertType)
}
