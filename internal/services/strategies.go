package services

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy names, also used as metric labels
const (
	StrategyKeyword     = "keyword"
	StrategyMerchant    = "merchant"
	StrategyAmountRange = "amount_range"
	StrategyAI          = "ai"
)

// ruleEntry is a pre-normalized rule. Pattern is lower-cased once at load time.
type ruleEntry struct {
	pattern    string
	minAmount  decimal.Decimal
	maxAmount  decimal.Decimal
	categoryID uuid.UUID
}

// ruleTable is an immutable snapshot. It is never mutated after publication.
type ruleTable struct {
	version uint64
	byOwner map[uuid.UUID][]ruleEntry
	size    int
}

// ruleStrategy matches transactions against the rules of one rule type.
// Load builds a new table and publishes it with an atomic swap, so a Categorize
// call always sees either the previous table or the new one, never a mix.
type ruleStrategy struct {
	name       string
	ruleType   models.RuleType
	confidence models.ConfidenceLevel
	method     string
	match      func(entry *ruleEntry, transaction *models.Transaction) bool
	table      atomic.Pointer[ruleTable]
	versions   atomic.Uint64
}

func (s *ruleStrategy) configure(name string, ruleType models.RuleType, confidence models.ConfidenceLevel, method string,
	match func(entry *ruleEntry, transaction *models.Transaction) bool) {
	s.name = name
	s.ruleType = ruleType
	s.confidence = confidence
	s.method = method
	s.match = match
}

// Name returns the strategy name
func (s *ruleStrategy) Name() string {
	return s.name
}

// Load replaces the rule table. Rules of other types and inactive rules are skipped.
// Entries keep priority order (highest first, then oldest first) so the first match is deterministic.
func (s *ruleStrategy) Load(rules []models.CategorizationRule) uint64 {
	selected := make([]models.CategorizationRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsActive && rule.RuleType == s.ruleType {
			selected = append(selected, rule)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Priority != selected[j].Priority {
			return selected[i].Priority > selected[j].Priority
		}
		return selected[i].CreatedAt.Before(selected[j].CreatedAt)
	})

	table := &ruleTable{
		version: s.versions.Add(1),
		byOwner: make(map[uuid.UUID][]ruleEntry),
		size:    len(selected),
	}
	for _, rule := range selected {
		entry := ruleEntry{
			pattern:    strings.ToLower(strings.TrimSpace(rule.Pattern)),
			categoryID: rule.CategoryID,
		}
		if rule.MinAmount != nil {
			entry.minAmount = *rule.MinAmount
		}
		if rule.MaxAmount != nil {
			entry.maxAmount = *rule.MaxAmount
		}
		table.byOwner[rule.UserID] = append(table.byOwner[rule.UserID], entry)
	}

	s.table.Store(table)
	return table.version
}

// Version returns the version of the published table, zero before the first Load
func (s *ruleStrategy) Version() uint64 {
	if table := s.table.Load(); table != nil {
		return table.version
	}
	return 0
}

// Size returns the number of rules in the published table
func (s *ruleStrategy) Size() int {
	if table := s.table.Load(); table != nil {
		return table.size
	}
	return 0
}

// Categorize returns the first rule of the transaction owner that matches, or nil
func (s *ruleStrategy) Categorize(_ context.Context, transaction *models.Transaction) *models.CategoryResult {
	if transaction == nil {
		return nil
	}

	table := s.table.Load()
	if table == nil {
		return nil
	}

	entries := table.byOwner[transaction.OwnerID()]
	for i := range entries {
		if s.match(&entries[i], transaction) {
			return models.NewMatchResult(entries[i].categoryID, s.confidence, s.method)
		}
	}

	return nil
}

// KeywordStrategy matches keywords against the lower-cased description
type KeywordStrategy struct {
	ruleStrategy
}

// NewKeywordStrategy creates an empty keyword strategy
func NewKeywordStrategy() *KeywordStrategy {
	strategy := &KeywordStrategy{}
	strategy.configure(StrategyKeyword, models.RuleTypeKeyword,
		models.ConfidenceHigh, models.CategorizationMethodKeyword, matchDescription)
	return strategy
}

// MerchantStrategy matches patterns against the lower-cased merchant name
type MerchantStrategy struct {
	ruleStrategy
}

// NewMerchantStrategy creates an empty merchant strategy
func NewMerchantStrategy() *MerchantStrategy {
	strategy := &MerchantStrategy{}
	strategy.configure(StrategyMerchant, models.RuleTypeMerchant,
		models.ConfidenceHigh, models.CategorizationMethodMerchant, matchMerchant)
	return strategy
}

// AmountRangeStrategy matches the absolute amount against inclusive ranges
type AmountRangeStrategy struct {
	ruleStrategy
}

// NewAmountRangeStrategy creates an empty amount range strategy
func NewAmountRangeStrategy() *AmountRangeStrategy {
	strategy := &AmountRangeStrategy{}
	strategy.configure(StrategyAmountRange, models.RuleTypeAmountRange,
		models.ConfidenceMedium, models.CategorizationMethodAmount, matchAmountRange)
	return strategy
}

func matchDescription(entry *ruleEntry, transaction *models.Transaction) bool {
	return entry.pattern != "" && strings.Contains(strings.ToLower(transaction.Description), entry.pattern)
}

func matchMerchant(entry *ruleEntry, transaction *models.Transaction) bool {
	return entry.pattern != "" && strings.Contains(strings.ToLower(transaction.MerchantName), entry.pattern)
}

func matchAmountRange(entry *ruleEntry, transaction *models.Transaction) bool {
	amount := transaction.Amount.Abs()
	return amount.GreaterThanOrEqual(entry.minAmount) && amount.LessThanOrEqual(entry.maxAmount)
}
