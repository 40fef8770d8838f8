package services_test

import (
	"context"
	"testing"

	"budget-watch/internal/models"
	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ChainTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	keyword     *service_mocks.MockCategorizationStrategyInterface
	merchant    *service_mocks.MockCategorizationStrategyInterface
	ai          *service_mocks.MockCategorizationStrategyInterface
	transaction *models.Transaction
}

func TestChainSuite(t *testing.T) {
	suite.Run(t, new(ChainTestSuite))
}

func (s *ChainTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.keyword = service_mocks.NewMockCategorizationStrategyInterface(s.ctrl)
	s.merchant = service_mocks.NewMockCategorizationStrategyInterface(s.ctrl)
	s.ai = service_mocks.NewMockCategorizationStrategyInterface(s.ctrl)
	s.transaction = &models.Transaction{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Amount:      decimal.NewFromFloat(-12.5),
		Description: "Corner cafe",
	}
}

func (s *ChainTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChainTestSuite) TestBuild_WithoutAIHasRuleAndManualStages() {
	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword).Build()

	s.Equal([]services.ChainState{services.ChainStateRule, services.ChainStateManual}, chain.Stages())
}

func (s *ChainTestSuite) TestBuild_TypedNilAIStrategyIsLeftOut() {
	var ai *services.AIStrategy
	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword).WithAIStrategy(ai).Build()

	s.Equal([]services.ChainState{services.ChainStateRule, services.ChainStateManual}, chain.Stages())
}

func (s *ChainTestSuite) TestBuild_TypedNilStrategiesAreLeftOut() {
	var keyword *services.KeywordStrategy
	var merchant *services.MerchantStrategy
	chain := services.NewChainBuilder().WithRuleStrategies(keyword).WithAIStrategy(merchant).Build()

	s.Equal([]services.ChainState{services.ChainStateManual}, chain.Stages())
	s.NotPanics(func() {
		s.True(chain.Handle(s.ctx, s.transaction).RequiresManual)
	})
}

func (s *ChainTestSuite) TestBuild_FullChain() {
	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword, nil).WithAIStrategy(s.ai).Build()

	s.Equal([]services.ChainState{services.ChainStateRule, services.ChainStateAI, services.ChainStateManual}, chain.Stages())
}

func (s *ChainTestSuite) TestBuild_EmptyBuilderIsManualOnly() {
	chain := services.NewChainBuilder().Build()

	result, state := chain.HandleWithState(s.ctx, s.transaction)

	s.Equal([]services.ChainState{services.ChainStateManual}, chain.Stages())
	s.Equal(services.ChainStateManual, state)
	s.True(result.RequiresManual)
	s.Nil(result.CategoryID)
}

func (s *ChainTestSuite) TestHandle_RuleMatchStopsTheChain() {
	categoryID := uuid.New()
	match := models.NewMatchResult(categoryID, models.ConfidenceHigh, models.CategorizationMethodKeyword)

	s.keyword.EXPECT().Categorize(s.ctx, s.transaction).Return(match).Times(1)
	s.merchant.EXPECT().Categorize(gomock.Any(), gomock.Any()).Times(0)
	s.ai.EXPECT().Categorize(gomock.Any(), gomock.Any()).Times(0)

	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword, s.merchant).WithAIStrategy(s.ai).Build()
	result, state := chain.HandleWithState(s.ctx, s.transaction)

	s.Equal(services.ChainStateRule, state)
	s.Same(match, result)
}

func (s *ChainTestSuite) TestHandle_RuleStrategiesTriedInOrder() {
	categoryID := uuid.New()
	match := models.NewMatchResult(categoryID, models.ConfidenceHigh, models.CategorizationMethodMerchant)

	gomock.InOrder(
		s.keyword.EXPECT().Categorize(s.ctx, s.transaction).Return(nil),
		s.merchant.EXPECT().Categorize(s.ctx, s.transaction).Return(match),
	)

	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword, s.merchant).Build()
	result := chain.Handle(s.ctx, s.transaction)

	s.Equal(categoryID, *result.CategoryID)
	s.Equal(models.CategorizationMethodMerchant, result.Method)
}

func (s *ChainTestSuite) TestHandle_FallsThroughToAI() {
	categoryID := uuid.New()
	match := models.NewMatchResult(categoryID, models.ConfidenceMedium, models.CategorizationMethodLLM)

	s.keyword.EXPECT().Categorize(s.ctx, s.transaction).Return(nil)
	s.ai.EXPECT().Categorize(s.ctx, s.transaction).Return(match)

	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword).WithAIStrategy(s.ai).Build()
	result, state := chain.HandleWithState(s.ctx, s.transaction)

	s.Equal(services.ChainStateAI, state)
	s.Equal(models.ConfidenceMedium, result.Confidence)
}

func (s *ChainTestSuite) TestHandle_NothingMatchesRequiresManual() {
	s.keyword.EXPECT().Categorize(s.ctx, s.transaction).Return(nil)
	s.ai.EXPECT().Categorize(s.ctx, s.transaction).Return(nil)

	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword).WithAIStrategy(s.ai).Build()
	result, state := chain.HandleWithState(s.ctx, s.transaction)

	s.Equal(services.ChainStateManual, state)
	s.Require().NotNil(result)
	s.True(result.RequiresManual)
	s.Nil(result.CategoryID)
	s.Equal(models.ConfidenceLow, result.Confidence)
	s.Equal(models.CategorizationMethodManualRequired, result.Method)
}

func (s *ChainTestSuite) TestHandle_ResultWithoutCategoryIsNotAMatch() {
	s.keyword.EXPECT().Categorize(s.ctx, s.transaction).Return(&models.CategoryResult{Confidence: models.ConfidenceHigh})

	chain := services.NewChainBuilder().WithRuleStrategies(s.keyword).Build()
	result := chain.Handle(s.ctx, s.transaction)

	s.True(result.RequiresManual)
}

func (s *ChainTestSuite) TestRuleStage_DropsNilStrategies() {
	stage := services.NewRuleStage(nil, s.keyword)
	s.keyword.EXPECT().Categorize(s.ctx, s.transaction).Return(nil)

	s.Nil(stage.Process(s.ctx, s.transaction))
	s.Equal(services.ChainStateRule, stage.Stage())
}
