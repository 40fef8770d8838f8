package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"budget-watch/internal/classifier"
	"budget-watch/internal/models"

	"github.com/google/uuid"
)

// AIOutcome classifies what happened on one AI strategy call.
// Every outcome except AIOutcomeMatched collapses to "no match" for the chain.
type AIOutcome string

const (
	AIOutcomeMatched         AIOutcome = "matched"
	AIOutcomeUnavailable     AIOutcome = "unavailable"
	AIOutcomeError           AIOutcome = "error"
	AIOutcomeLowConfidence   AIOutcome = "low_confidence"
	AIOutcomeUnknownCategory AIOutcome = "unknown_category"
)

// DefaultAIConfidenceThreshold is the minimum classifier score accepted as a match
const DefaultAIConfidenceThreshold = 0.70

var (
	ErrClassifierUnavailable = errors.New("classifier unavailable")
	ErrClassifierMissing     = errors.New("no classifier configured")
)

type categoryCatalog struct {
	names  []string
	byName map[string]uuid.UUID
}

// AIStrategy categorizes through an external classifier. The classifier answers
// with a category name which is resolved against the loaded category catalog.
type AIStrategy struct {
	classifier  classifier.ClassifierInterface
	threshold   float64
	catalog     atomic.Pointer[categoryCatalog]
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
}

// NewAIStrategy creates an AI strategy. A threshold outside (0, 1] falls back to the default.
func NewAIStrategy(c classifier.ClassifierInterface, threshold float64, metrics MetricsRecorderInterface, auditLogger AuditLoggerInterface) *AIStrategy {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultAIConfidenceThreshold
	}

	strategy := &AIStrategy{
		classifier:  c,
		threshold:   threshold,
		metrics:     metrics,
		auditLogger: auditLogger,
	}
	strategy.catalog.Store(&categoryCatalog{byName: map[string]uuid.UUID{}})
	return strategy
}

// Name returns the strategy name
func (s *AIStrategy) Name() string {
	return StrategyAI
}

// Threshold returns the minimum accepted classifier score
func (s *AIStrategy) Threshold() float64 {
	return s.threshold
}

// LoadCategories publishes the categories the classifier may choose from
func (s *AIStrategy) LoadCategories(categories []models.Category) {
	catalog := &categoryCatalog{
		names:  make([]string, 0, len(categories)),
		byName: make(map[string]uuid.UUID, len(categories)),
	}
	for _, category := range categories {
		key := strings.ToLower(strings.TrimSpace(category.Name))
		if key == "" {
			continue
		}
		if _, exists := catalog.byName[key]; exists {
			continue
		}
		catalog.byName[key] = category.ID
		catalog.names = append(catalog.names, category.Name)
	}
	sort.Strings(catalog.names)

	s.catalog.Store(catalog)
}

// Categorize returns a MEDIUM confidence match or nil. It never returns an error.
func (s *AIStrategy) Categorize(ctx context.Context, transaction *models.Transaction) *models.CategoryResult {
	result, outcome, err := s.Classify(ctx, transaction)
	s.record(ctx, transaction, outcome, err)
	return result
}

// Classify runs the classifier and reports the outcome explicitly. A panicking
// classifier is reported as AIOutcomeError.
func (s *AIStrategy) Classify(ctx context.Context, transaction *models.Transaction) (result *models.CategoryResult, outcome AIOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, outcome, err = nil, AIOutcomeError, fmt.Errorf("classifier panicked: %v", r)
		}
	}()

	if s.classifier == nil {
		return nil, AIOutcomeUnavailable, ErrClassifierMissing
	}
	if transaction == nil {
		return nil, AIOutcomeError, ErrTransactionNil
	}

	catalog := s.catalog.Load()
	prediction, err := s.classifier.Classify(ctx, classifier.Request{
		Description:  transaction.Description,
		MerchantName: transaction.MerchantName,
		Amount:       transaction.Amount,
		Categories:   catalog.names,
	})
	if err != nil {
		if isUnavailable(err) {
			return nil, AIOutcomeUnavailable, err
		}
		return nil, AIOutcomeError, err
	}

	// written so that a NaN confidence is rejected
	if prediction == nil || !(prediction.Confidence >= s.threshold) {
		return nil, AIOutcomeLowConfidence, nil
	}

	categoryID, ok := catalog.byName[strings.ToLower(strings.TrimSpace(prediction.Category))]
	if !ok {
		return nil, AIOutcomeUnknownCategory, nil
	}

	return models.NewMatchResult(categoryID, models.ConfidenceMedium, models.CategorizationMethodLLM), AIOutcomeMatched, nil
}

func (s *AIStrategy) record(ctx context.Context, transaction *models.Transaction, outcome AIOutcome, err error) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("categorization.ai", map[string]string{
			"outcome": string(outcome),
		})
	}

	if outcome == AIOutcomeMatched || s.auditLogger == nil {
		return
	}

	transactionID := uuid.Nil
	if transaction != nil {
		transactionID = transaction.ID
	}
	errorMsg := ""
	if err != nil {
		errorMsg = err.Error()
	}
	s.auditLogger.LogAIDegraded(ctx, transactionID, outcome, errorMsg)
}

func isUnavailable(err error) bool {
	return errors.Is(err, ErrClassifierUnavailable) ||
		errors.Is(err, ErrCircuitBreakerOpen) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
