package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"budget-watch/internal/models"
	"budget-watch/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StrategiesTestSuite struct {
	suite.Suite
	ctx    context.Context
	userID uuid.UUID
}

func TestStrategiesSuite(t *testing.T) {
	suite.Run(t, new(StrategiesTestSuite))
}

func (s *StrategiesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *StrategiesTestSuite) transaction(description, merchant, amount string) *models.Transaction {
	return &models.Transaction{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		Amount:       decimal.RequireFromString(amount),
		Description:  description,
		MerchantName: merchant,
		Account:      models.Account{UserID: s.userID},
	}
}

func (s *StrategiesTestSuite) rule(ruleType models.RuleType, pattern string, categoryID uuid.UUID, priority int) models.CategorizationRule {
	return models.CategorizationRule{
		ID:         uuid.New(),
		UserID:     s.userID,
		RuleName:   gofakeit.Word(),
		RuleType:   ruleType,
		Pattern:    pattern,
		CategoryID: categoryID,
		Priority:   priority,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}

func amountRule(userID, categoryID uuid.UUID, low, high string) models.CategorizationRule {
	minAmount := decimal.RequireFromString(low)
	maxAmount := decimal.RequireFromString(high)
	return models.CategorizationRule{
		ID:         uuid.New(),
		UserID:     userID,
		RuleType:   models.RuleTypeAmountRange,
		MinAmount:  &minAmount,
		MaxAmount:  &maxAmount,
		CategoryID: categoryID,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}

func (s *StrategiesTestSuite) TestKeywordStrategy_MatchesCaseInsensitively() {
	categoryID := uuid.New()
	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "  NETFLIX ", categoryID, 0)})

	result := strategy.Categorize(s.ctx, s.transaction("Monthly Netflix subscription", "", "-15.99"))

	s.Require().NotNil(result)
	s.Equal(categoryID, *result.CategoryID)
	s.Equal(models.ConfidenceHigh, result.Confidence)
	s.Equal(models.CategorizationMethodKeyword, result.Method)
	s.False(result.RequiresManual)
	s.Equal(services.StrategyKeyword, strategy.Name())
}

func (s *StrategiesTestSuite) TestKeywordStrategy_NoMatchReturnsNil() {
	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "netflix", uuid.New(), 0)})

	s.Nil(strategy.Categorize(s.ctx, s.transaction("Grocery run", "", "-40.00")))
}

func (s *StrategiesTestSuite) TestKeywordStrategy_EmptyTableReturnsNil() {
	strategy := services.NewKeywordStrategy()

	s.Nil(strategy.Categorize(s.ctx, s.transaction("anything", "", "-1.00")))
	s.Equal(uint64(0), strategy.Version())
	s.Equal(0, strategy.Size())
}

func (s *StrategiesTestSuite) TestKeywordStrategy_NilTransaction() {
	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "x", uuid.New(), 0)})

	s.Nil(strategy.Categorize(s.ctx, nil))
}

func (s *StrategiesTestSuite) TestKeywordStrategy_HigherPriorityWins() {
	low := uuid.New()
	high := uuid.New()
	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{
		s.rule(models.RuleTypeKeyword, "coffee", low, 1),
		s.rule(models.RuleTypeKeyword, "coffee", high, 10),
	})

	result := strategy.Categorize(s.ctx, s.transaction("Coffee shop", "", "-4.50"))

	s.Require().NotNil(result)
	s.Equal(high, *result.CategoryID)
}

func (s *StrategiesTestSuite) TestKeywordStrategy_EqualPriorityOldestWins() {
	older := s.rule(models.RuleTypeKeyword, "coffee", uuid.New(), 5)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := s.rule(models.RuleTypeKeyword, "coffee", uuid.New(), 5)

	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{newer, older})

	result := strategy.Categorize(s.ctx, s.transaction("Coffee shop", "", "-4.50"))

	s.Require().NotNil(result)
	s.Equal(older.CategoryID, *result.CategoryID)
}

func (s *StrategiesTestSuite) TestKeywordStrategy_SkipsInactiveAndOtherTypes() {
	inactive := s.rule(models.RuleTypeKeyword, "rent", uuid.New(), 0)
	inactive.IsActive = false
	merchant := s.rule(models.RuleTypeMerchant, "rent", uuid.New(), 0)

	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{inactive, merchant})

	s.Nil(strategy.Categorize(s.ctx, s.transaction("rent payment", "rent co", "-900.00")))
	s.Equal(0, strategy.Size())
}

func (s *StrategiesTestSuite) TestKeywordStrategy_OnlyOwnerRulesApply() {
	other := s.rule(models.RuleTypeKeyword, "gym", uuid.New(), 0)
	other.UserID = uuid.New()

	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{other})

	s.Nil(strategy.Categorize(s.ctx, s.transaction("gym membership", "", "-30.00")))
}

func (s *StrategiesTestSuite) TestMerchantStrategy_MatchesMerchantOnly() {
	categoryID := uuid.New()
	strategy := services.NewMerchantStrategy()
	strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeMerchant, "whole foods", categoryID, 0)})

	match := strategy.Categorize(s.ctx, s.transaction("weekly shop", "WHOLE FOODS MARKET #12", "-85.20"))
	s.Require().NotNil(match)
	s.Equal(categoryID, *match.CategoryID)
	s.Equal(models.ConfidenceHigh, match.Confidence)
	s.Equal(models.CategorizationMethodMerchant, match.Method)

	s.Nil(strategy.Categorize(s.ctx, s.transaction("whole foods", "", "-85.20")))
}

func (s *StrategiesTestSuite) TestAmountRangeStrategy_InclusiveBounds() {
	categoryID := uuid.New()
	strategy := services.NewAmountRangeStrategy()
	strategy.Load([]models.CategorizationRule{amountRule(s.userID, categoryID, "10.00", "20.00")})

	testCases := []struct {
		amount  string
		matches bool
	}{
		{"-10.00", true},
		{"-20.00", true},
		{"15.00", true},
		{"-9.99", false},
		{"-20.01", false},
	}

	for _, tc := range testCases {
		s.Run(tc.amount, func() {
			result := strategy.Categorize(s.ctx, s.transaction("x", "", tc.amount))
			if !tc.matches {
				s.Nil(result)
				return
			}
			s.Require().NotNil(result)
			s.Equal(models.ConfidenceMedium, result.Confidence)
			s.Equal(models.CategorizationMethodAmount, result.Method)
		})
	}
}

func (s *StrategiesTestSuite) TestLoad_BumpsVersionAndReplacesTable() {
	first := uuid.New()
	second := uuid.New()
	strategy := services.NewKeywordStrategy()

	v1 := strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "uber", first, 0)})
	v2 := strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "uber", second, 0)})

	s.Equal(uint64(1), v1)
	s.Equal(uint64(2), v2)
	s.Equal(v2, strategy.Version())

	result := strategy.Categorize(s.ctx, s.transaction("uber trip", "", "-12.00"))
	s.Require().NotNil(result)
	s.Equal(second, *result.CategoryID)
}

func (s *StrategiesTestSuite) TestLoad_ConcurrentReadersSeeOneTable() {
	first := uuid.New()
	second := uuid.New()
	strategy := services.NewKeywordStrategy()
	strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "lyft", first, 0)})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				result := strategy.Categorize(s.ctx, s.transaction("lyft ride", "", "-9.00"))
				if result == nil || (*result.CategoryID != first && *result.CategoryID != second) {
					s.Fail("reader saw a partial rule table")
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		categoryID := first
		if i%2 == 0 {
			categoryID = second
		}
		strategy.Load([]models.CategorizationRule{s.rule(models.RuleTypeKeyword, "lyft", categoryID, 0)})
	}
	wg.Wait()
}
