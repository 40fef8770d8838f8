package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"budget-watch/internal/classifier"
	"budget-watch/internal/models"
	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// classifierFunc adapts a function to classifier.ClassifierInterface
type classifierFunc func(ctx context.Context, req classifier.Request) (*classifier.Prediction, error)

func (f classifierFunc) Classify(ctx context.Context, req classifier.Request) (*classifier.Prediction, error) {
	return f(ctx, req)
}

type AIStrategyTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	metrics     *service_mocks.MockMetricsRecorderInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	groceries   models.Category
	dining      models.Category
	transaction *models.Transaction
}

func TestAIStrategySuite(t *testing.T) {
	suite.Run(t, new(AIStrategyTestSuite))
}

func (s *AIStrategyTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.groceries = models.Category{ID: uuid.New(), Name: models.CategoryGroceries}
	s.dining = models.Category{ID: uuid.New(), Name: models.CategoryDining}
	s.transaction = &models.Transaction{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		Amount:       decimal.NewFromFloat(-32.10),
		Description:  "TRADER JOES #552",
		MerchantName: "Trader Joes",
	}
}

func (s *AIStrategyTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AIStrategyTestSuite) strategy(c classifier.ClassifierInterface) *services.AIStrategy {
	strategy := services.NewAIStrategy(c, 0.7, s.metrics, s.auditLogger)
	strategy.LoadCategories([]models.Category{s.groceries, s.dining, {Name: "  "}})
	return strategy
}

func (s *AIStrategyTestSuite) expectOutcome(outcome services.AIOutcome) {
	s.metrics.EXPECT().IncrementCounter("categorization.ai", map[string]string{"outcome": string(outcome)}).Times(1)
}

func (s *AIStrategyTestSuite) TestCategorize_ConfidentKnownCategoryMatches() {
	var seen classifier.Request
	strategy := s.strategy(classifierFunc(func(_ context.Context, req classifier.Request) (*classifier.Prediction, error) {
		seen = req
		return &classifier.Prediction{Category: "groceries", Confidence: 0.92}, nil
	}))
	s.expectOutcome(services.AIOutcomeMatched)

	result := strategy.Categorize(s.ctx, s.transaction)

	s.Require().NotNil(result)
	s.Equal(s.groceries.ID, *result.CategoryID)
	s.Equal(models.ConfidenceMedium, result.Confidence)
	s.Equal(models.CategorizationMethodLLM, result.Method)
	s.Equal([]string{models.CategoryDining, models.CategoryGroceries}, seen.Categories)
	s.Equal(s.transaction.Description, seen.Description)
}

func (s *AIStrategyTestSuite) TestCategorize_ThresholdIsInclusive() {
	strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		return &classifier.Prediction{Category: models.CategoryDining, Confidence: 0.7}, nil
	}))
	s.expectOutcome(services.AIOutcomeMatched)

	s.NotNil(strategy.Categorize(s.ctx, s.transaction))
}

func (s *AIStrategyTestSuite) TestCategorize_LowConfidenceIsNoMatch() {
	strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		return &classifier.Prediction{Category: models.CategoryDining, Confidence: 0.69}, nil
	}))
	s.expectOutcome(services.AIOutcomeLowConfidence)
	s.auditLogger.EXPECT().LogAIDegraded(s.ctx, s.transaction.ID, services.AIOutcomeLowConfidence, "").Times(1)

	s.Nil(strategy.Categorize(s.ctx, s.transaction))
}

func (s *AIStrategyTestSuite) TestCategorize_UnknownCategoryIsNoMatch() {
	strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		return &classifier.Prediction{Category: "Crypto", Confidence: 0.99}, nil
	}))
	s.expectOutcome(services.AIOutcomeUnknownCategory)
	s.auditLogger.EXPECT().LogAIDegraded(s.ctx, s.transaction.ID, services.AIOutcomeUnknownCategory, "").Times(1)

	s.Nil(strategy.Categorize(s.ctx, s.transaction))
}

func (s *AIStrategyTestSuite) TestCategorize_ClassifierErrorIsNoMatch() {
	strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		return nil, errors.New("status 500")
	}))
	s.expectOutcome(services.AIOutcomeError)
	s.auditLogger.EXPECT().LogAIDegraded(s.ctx, s.transaction.ID, services.AIOutcomeError, "status 500").Times(1)

	s.Nil(strategy.Categorize(s.ctx, s.transaction))
}

func (s *AIStrategyTestSuite) TestCategorize_NaNConfidenceIsNoMatch() {
	strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		return &classifier.Prediction{Category: models.CategoryDining, Confidence: math.NaN()}, nil
	}))
	s.expectOutcome(services.AIOutcomeLowConfidence)
	s.auditLogger.EXPECT().LogAIDegraded(s.ctx, s.transaction.ID, services.AIOutcomeLowConfidence, "").Times(1)

	s.Nil(strategy.Categorize(s.ctx, s.transaction))
}

func (s *AIStrategyTestSuite) TestCategorize_PanickingClassifierIsNoMatch() {
	strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		panic("adapter exploded")
	}))
	s.expectOutcome(services.AIOutcomeError)
	s.auditLogger.EXPECT().LogAIDegraded(s.ctx, s.transaction.ID, services.AIOutcomeError, "classifier panicked: adapter exploded").Times(1)

	s.NotPanics(func() {
		s.Nil(strategy.Categorize(s.ctx, s.transaction))
	})
}

func (s *AIStrategyTestSuite) TestChain_PanickingClassifierFallsThroughToManual() {
	var nilPrediction *classifier.Prediction
	adapter := classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		// nil dereference inside a broken adapter
		return &classifier.Prediction{Category: nilPrediction.Category}, nil
	})
	chain := services.NewChainBuilder().
		WithAIStrategy(services.NewAIStrategy(adapter, 0.7, nil, nil)).
		Build()

	var result *models.CategoryResult
	s.NotPanics(func() {
		result = chain.Handle(s.ctx, s.transaction)
	})

	s.Require().NotNil(result)
	s.True(result.RequiresManual)
	s.Nil(result.CategoryID)
}

func (s *AIStrategyTestSuite) TestClassify_UnavailableOutcomes() {
	testCases := []struct {
		name string
		err  error
	}{
		{"breaker open", services.ErrCircuitBreakerOpen},
		{"rate limited", services.ErrClassifierUnavailable},
		{"timeout", context.DeadlineExceeded},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			strategy := s.strategy(classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
				return nil, tc.err
			}))

			result, outcome, err := strategy.Classify(s.ctx, s.transaction)

			s.Nil(result)
			s.Equal(services.AIOutcomeUnavailable, outcome)
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *AIStrategyTestSuite) TestClassify_NoClassifier() {
	strategy := services.NewAIStrategy(nil, 0.7, nil, nil)

	result, outcome, err := strategy.Classify(s.ctx, s.transaction)

	s.Nil(result)
	s.Equal(services.AIOutcomeUnavailable, outcome)
	s.ErrorIs(err, services.ErrClassifierMissing)
}

func (s *AIStrategyTestSuite) TestNewAIStrategy_InvalidThresholdFallsBack() {
	s.Equal(services.DefaultAIConfidenceThreshold, services.NewAIStrategy(nil, 0, nil, nil).Threshold())
	s.Equal(services.DefaultAIConfidenceThreshold, services.NewAIStrategy(nil, 1.5, nil, nil).Threshold())
	s.Equal(0.85, services.NewAIStrategy(nil, 0.85, nil, nil).Threshold())
	s.Equal(services.StrategyAI, services.NewAIStrategy(nil, 0, nil, nil).Name())
}
