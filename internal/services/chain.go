package services

import (
	"context"
	"reflect"

	"budget-watch/internal/models"
)

// ChainState is the position of a transaction inside the categorization chain
type ChainState string

const (
	ChainStateRule   ChainState = "RULE"
	ChainStateAI     ChainState = "AI"
	ChainStateManual ChainState = "MANUAL"
	ChainStateDone   ChainState = "DONE"
)

// RuleStage tries each rule strategy in order and returns the first match
type RuleStage struct {
	strategies []CategorizationStrategyInterface
}

// NewRuleStage creates a rule stage. Nil strategies are dropped.
func NewRuleStage(strategies ...CategorizationStrategyInterface) *RuleStage {
	stage := &RuleStage{}
	for _, strategy := range strategies {
		if !isNilStrategy(strategy) {
			stage.strategies = append(stage.strategies, strategy)
		}
	}
	return stage
}

func (s *RuleStage) Stage() ChainState {
	return ChainStateRule
}

func (s *RuleStage) Process(ctx context.Context, transaction *models.Transaction) *models.CategoryResult {
	for _, strategy := range s.strategies {
		if result := strategy.Categorize(ctx, transaction); result.IsMatch() {
			return result
		}
	}
	return nil
}

// AIStage delegates to the AI strategy. It only exists when one was supplied.
type AIStage struct {
	strategy CategorizationStrategyInterface
}

func (s *AIStage) Stage() ChainState {
	return ChainStateAI
}

func (s *AIStage) Process(ctx context.Context, transaction *models.Transaction) *models.CategoryResult {
	if result := s.strategy.Categorize(ctx, transaction); result.IsMatch() {
		return result
	}
	return nil
}

// ManualStage is terminal and always asks for manual categorization
type ManualStage struct{}

func (s *ManualStage) Stage() ChainState {
	return ChainStateManual
}

func (s *ManualStage) Process(_ context.Context, _ *models.Transaction) *models.CategoryResult {
	return models.NewManualResult()
}

// CategorizationChain runs its stages in order until one yields a category.
// The last stage is always the manual stage, so Handle returns exactly one
// non-nil result for every call.
type CategorizationChain struct {
	stages []CategorizationStageInterface
}

// Handle walks RULE, AI (when built), MANUAL and stops at the first match
func (c *CategorizationChain) Handle(ctx context.Context, transaction *models.Transaction) *models.CategoryResult {
	result, _ := c.HandleWithState(ctx, transaction)
	return result
}

// HandleWithState also reports which stage produced the result
func (c *CategorizationChain) HandleWithState(ctx context.Context, transaction *models.Transaction) (*models.CategoryResult, ChainState) {
	for _, stage := range c.stages {
		result := stage.Process(ctx, transaction)
		if result.IsMatch() {
			return result, stage.Stage()
		}
		if stage.Stage() == ChainStateManual && result != nil {
			return result, ChainStateManual
		}
	}

	// only reachable for a chain built without its manual stage
	return models.NewManualResult(), ChainStateDone
}

// Stages returns the chain layout, mostly for diagnostics
func (c *CategorizationChain) Stages() []ChainState {
	states := make([]ChainState, 0, len(c.stages))
	for _, stage := range c.stages {
		states = append(states, stage.Stage())
	}
	return states
}

// ChainBuilder assembles a CategorizationChain
type ChainBuilder struct {
	ruleStrategies []CategorizationStrategyInterface
	aiStrategy     CategorizationStrategyInterface
}

// NewChainBuilder creates an empty builder
func NewChainBuilder() *ChainBuilder {
	return &ChainBuilder{}
}

// WithRuleStrategies appends rule strategies; they are tried in the order given
func (b *ChainBuilder) WithRuleStrategies(strategies ...CategorizationStrategyInterface) *ChainBuilder {
	for _, strategy := range strategies {
		if !isNilStrategy(strategy) {
			b.ruleStrategies = append(b.ruleStrategies, strategy)
		}
	}
	return b
}

// WithAIStrategy sets the AI strategy. A nil strategy leaves the AI stage out.
func (b *ChainBuilder) WithAIStrategy(strategy CategorizationStrategyInterface) *ChainBuilder {
	b.aiStrategy = strategy
	return b
}

// Build returns the chain. The rule stage is only added when it has strategies,
// the AI stage only when an AI strategy was given, and the manual stage always.
func (b *ChainBuilder) Build() *CategorizationChain {
	stages := make([]CategorizationStageInterface, 0, 3)
	if len(b.ruleStrategies) > 0 {
		stages = append(stages, NewRuleStage(b.ruleStrategies...))
	}
	if !isNilStrategy(b.aiStrategy) {
		stages = append(stages, &AIStage{strategy: b.aiStrategy})
	}
	stages = append(stages, &ManualStage{})

	return &CategorizationChain{stages: stages}
}

// isNilStrategy also catches typed nils such as (*AIStrategy)(nil)
func isNilStrategy(strategy CategorizationStrategyInterface) bool {
	if strategy == nil {
		return true
	}
	v := reflect.ValueOf(strategy)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
