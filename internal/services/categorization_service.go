package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"
	"budget-watch/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidRuleAmount = errors.New("rule amount must be a decimal number")
	ErrRuleNotFound      = errors.New("categorization rule not found")
	ErrCategoryNotFound  = errors.New("category not found")
)

const defaultBatchWorkers = 8

// CategorizationService owns the live categorization chain. The chain holds the
// strategies themselves, so a rule reload swaps their tables without rebuilding it.
type CategorizationService struct {
	ruleRepo     repositories.CategorizationRuleRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	keyword      *KeywordStrategy
	merchant     *MerchantStrategy
	amountRange  *AmountRangeStrategy
	ai           *AIStrategy
	chain        *CategorizationChain
	metrics      MetricsRecorderInterface
	auditLogger  AuditLoggerInterface
	workers      int
	reloadMu     sync.Mutex
	version      atomic.Uint64
	logger       *slog.Logger
}

// NewCategorizationService builds the chain. A nil ai leaves the AI stage out.
func NewCategorizationService(
	ruleRepo repositories.CategorizationRuleRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	ai *AIStrategy,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	workers int,
) *CategorizationService {
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	s := &CategorizationService{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
		keyword:      NewKeywordStrategy(),
		merchant:     NewMerchantStrategy(),
		amountRange:  NewAmountRangeStrategy(),
		ai:           ai,
		metrics:      metrics,
		auditLogger:  auditLogger,
		workers:      workers,
		logger:       slog.Default(),
	}

	builder := NewChainBuilder().WithRuleStrategies(s.keyword, s.merchant, s.amountRange)
	if ai != nil {
		builder = builder.WithAIStrategy(ai)
	}
	s.chain = builder.Build()

	return s
}

// Chain exposes the live chain
func (s *CategorizationService) Chain() *CategorizationChain {
	return s.chain
}

// Categorize runs transaction through the chain. It always returns a result.
func (s *CategorizationService) Categorize(ctx context.Context, transaction *models.Transaction) *models.CategoryResult {
	if transaction == nil {
		return models.NewManualResult()
	}

	start := time.Now()
	result, stage := s.chain.HandleWithState(ctx, transaction)
	duration := time.Since(start)

	s.metrics.RecordProcessingTime("categorization.duration", duration)
	s.metrics.IncrementCounter("categorization.completed", map[string]string{
		"stage":      strings.ToLower(string(stage)),
		"method":     result.Method,
		"confidence": string(result.Confidence),
	})
	s.auditLogger.LogCategorizationCompleted(ctx, transaction.ID, result, duration.Milliseconds())

	return result
}

// CategorizeBatch categorizes transactions in parallel. results[i] belongs to transactions[i].
func (s *CategorizationService) CategorizeBatch(ctx context.Context, transactions []*models.Transaction) ([]*models.CategoryResult, error) {
	results := make([]*models.CategoryResult, len(transactions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, transaction := range transactions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Categorize(gctx, transaction)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to categorize batch: %w", err)
	}
	return results, nil
}

// ReloadRules reads every active rule and publishes fresh tables to all rule
// strategies. The AI category catalog is refreshed at the same time.
func (s *CategorizationService) ReloadRules(ctx context.Context) (*dto.RulesReloadResponse, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()

	rules, err := s.ruleRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load categorization rules: %w", err)
	}

	if s.ai != nil {
		categories, err := s.categoryRepo.List()
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		s.ai.LoadCategories(categories)
	}

	s.keyword.Load(rules)
	s.merchant.Load(rules)
	s.amountRange.Load(rules)
	version := s.version.Add(1)

	duration := time.Since(start)
	ruleCount := s.keyword.Size() + s.merchant.Size() + s.amountRange.Size()

	s.metrics.RecordGauge("categorization.rules_loaded", float64(ruleCount), nil)
	s.metrics.RecordProcessingTime("categorization.rules_reload", duration)
	s.auditLogger.LogRulesReloaded(ctx, version, ruleCount, duration.Milliseconds())

	return &dto.RulesReloadResponse{
		Version:    version,
		RuleCount:  ruleCount,
		DurationMs: duration.Milliseconds(),
	}, nil
}

// RulesVersion returns the number of reloads published so far
func (s *CategorizationService) RulesVersion() uint64 {
	return s.version.Load()
}

// CreateRule stores a rule for userID and republishes the rule tables
func (s *CategorizationService) CreateRule(ctx context.Context, userID uuid.UUID, req *dto.CreateRuleRequest) (*models.CategorizationRule, error) {
	ruleType, err := models.ParseRuleType(req.RuleType)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, req.CategoryID)
	}
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	minAmount, err := parseOptionalAmount(req.MinAmount)
	if err != nil {
		return nil, err
	}
	maxAmount, err := parseOptionalAmount(req.MaxAmount)
	if err != nil {
		return nil, err
	}

	rule := &models.CategorizationRule{
		UserID:     userID,
		RuleName:   strings.TrimSpace(req.RuleName),
		RuleType:   ruleType,
		Pattern:    strings.TrimSpace(req.Pattern),
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
		CategoryID: categoryID,
		Priority:   req.Priority,
		IsActive:   true,
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	s.auditLogger.LogRuleCreated(ctx, rule.ID, userID, rule.RuleType)
	s.metrics.IncrementCounter("categorization.rule_created", map[string]string{"rule_type": string(rule.RuleType)})

	if _, err := s.ReloadRules(ctx); err != nil {
		return nil, err
	}
	return rule, nil
}

// ListRules returns the rules owned by userID, active or not
func (s *CategorizationService) ListRules(_ context.Context, userID uuid.UUID) ([]models.CategorizationRule, error) {
	rules, err := s.ruleRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// DeactivateRule switches a rule off and republishes the rule tables
func (s *CategorizationService) DeactivateRule(ctx context.Context, userID, ruleID uuid.UUID) error {
	if err := s.ruleRepo.Deactivate(ruleID, userID); err != nil {
		if errors.Is(err, repositories.ErrRuleNotFound) {
			return ErrRuleNotFound
		}
		return fmt.Errorf("failed to deactivate rule: %w", err)
	}

	s.auditLogger.LogRuleDeactivated(ctx, ruleID, userID)

	if _, err := s.ReloadRules(ctx); err != nil {
		return err
	}
	return nil
}

func parseOptionalAmount(value *string) (*decimal.Decimal, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(*value))
	if err != nil {
		return nil, ErrInvalidRuleAmount
	}
	return &amount, nil
}
