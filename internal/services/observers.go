package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories"

	"github.com/google/uuid"
)

const (
	ObserverBudgetAlert       = "budget_alert"
	ObserverCacheInvalidation = "cache_invalidation"
)

// Analytics cache key prefixes
const (
	AnalyticsCategoryKeyPrefix = "analytics:category:"
	AnalyticsAccountKeyPrefix  = "analytics:account:"
	AnalyticsDashboardKey      = "analytics:dashboard"
)

// BudgetAlertObserver re-evaluates the budget of an expense's category and raises
// an alert when spending crosses a threshold. An alert is raised once per crossing:
// if the current period already holds an alert at least as severe, nothing is sent.
type BudgetAlertObserver struct {
	accountRepo     repositories.AccountRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	alertRepo       repositories.BudgetAlertRepositoryInterface
	factory         AlertFactoryInterface
	sink            NotificationSinkInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
	locks           *budgetLocks
}

// NewBudgetAlertObserver creates the budget alert observer
func NewBudgetAlertObserver(
	accountRepo repositories.AccountRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	alertRepo repositories.BudgetAlertRepositoryInterface,
	factory AlertFactoryInterface,
	sink NotificationSinkInterface,
	metrics MetricsRecorderInterface,
) *BudgetAlertObserver {
	return &BudgetAlertObserver{
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		alertRepo:       alertRepo,
		factory:         factory,
		sink:            sink,
		metrics:         metrics,
		now:             time.Now,
		locks:           newBudgetLocks(),
	}
}

// WithClock replaces the clock used to pick the budget period
func (o *BudgetAlertObserver) WithClock(now func() time.Time) *BudgetAlertObserver {
	o.now = now
	return o
}

func (o *BudgetAlertObserver) Name() string {
	return ObserverBudgetAlert
}

func (o *BudgetAlertObserver) OnCreated(ctx context.Context, transaction *models.Transaction) error {
	return o.evaluate(ctx, transaction)
}

func (o *BudgetAlertObserver) OnUpdated(ctx context.Context, transaction *models.Transaction) error {
	return o.evaluate(ctx, transaction)
}

// OnDeleted does nothing. Alerts already raised stay in place even when the
// deletion brings spending back under the threshold.
// TODO: decide whether a deletion should retract alerts raised in the current period.
func (o *BudgetAlertObserver) OnDeleted(_ context.Context, _ *models.Transaction) error {
	return nil
}

func (o *BudgetAlertObserver) evaluate(ctx context.Context, transaction *models.Transaction) error {
	if !transaction.IsExpense() || !transaction.IsCategorized() {
		return nil
	}

	userID, err := o.ownerOf(transaction)
	if err != nil {
		return err
	}

	budget, err := o.budgetRepo.FindByCategory(userID, *transaction.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find budget: %w", err)
	}

	window := budget.PeriodWindow(o.now())
	if !window.Contains(transaction.TransactionDate) {
		return nil
	}

	// the previous-alert check and the send must not interleave for one budget
	unlock := o.locks.lock(budget.ID)
	defer unlock()

	spending, err := o.transactionRepo.SumExpenses(userID, budget.CategoryID, window)
	if err != nil {
		return fmt.Errorf("failed to compute budget spending: %w", err)
	}

	alertType, crossed := EvaluateThreshold(budget, spending)
	if !crossed {
		return nil
	}

	latest, err := o.alertRepo.LatestForBudget(budget.ID, window.Start)
	switch {
	case err == nil && latest.AlertType.Severity() >= alertType.Severity():
		o.metrics.IncrementCounter("budget_alert.suppressed", map[string]string{"alert_type": string(alertType)})
		return nil
	case err != nil && !errors.Is(err, repositories.ErrAlertNotFound):
		return fmt.Errorf("failed to check previous alerts: %w", err)
	}

	alert := o.factory.CreateAlert(budget, spending, alertType)
	if err := o.sink.SendAlert(ctx, alert); err != nil {
		return fmt.Errorf("failed to send budget alert: %w", err)
	}

	o.metrics.IncrementCounter("budget_alert.raised", map[string]string{"alert_type": string(alert.AlertType)})
	return nil
}

func (o *BudgetAlertObserver) ownerOf(transaction *models.Transaction) (uuid.UUID, error) {
	if owner := transaction.OwnerID(); owner != uuid.Nil {
		return owner, nil
	}

	account, err := o.accountRepo.GetByID(transaction.AccountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve transaction owner: %w", err)
	}
	return account.UserID, nil
}

// CacheInvalidationObserver drops the analytics entries a transaction change makes stale
type CacheInvalidationObserver struct {
	cache CacheInvalidatorInterface
}

// NewCacheInvalidationObserver creates the cache invalidation observer
func NewCacheInvalidationObserver(cache CacheInvalidatorInterface) *CacheInvalidationObserver {
	return &CacheInvalidationObserver{cache: cache}
}

func (o *CacheInvalidationObserver) Name() string {
	return ObserverCacheInvalidation
}

func (o *CacheInvalidationObserver) OnCreated(_ context.Context, transaction *models.Transaction) error {
	o.invalidate(transaction)
	return nil
}

func (o *CacheInvalidationObserver) OnUpdated(_ context.Context, transaction *models.Transaction) error {
	o.invalidate(transaction)
	return nil
}

func (o *CacheInvalidationObserver) OnDeleted(_ context.Context, transaction *models.Transaction) error {
	o.invalidate(transaction)
	return nil
}

func (o *CacheInvalidationObserver) invalidate(transaction *models.Transaction) {
	for _, key := range InvalidationKeys(transaction) {
		o.cache.Invalidate(key)
	}
}

// InvalidationKeys lists the analytics keys affected by a change to transaction
func InvalidationKeys(transaction *models.Transaction) []string {
	keys := make([]string, 0, 3)
	if transaction.CategoryID != nil {
		keys = append(keys, AnalyticsCategoryKeyPrefix+transaction.CategoryID.String())
	}
	keys = append(keys, AnalyticsAccountKeyPrefix+transaction.AccountID.String())
	keys = append(keys, AnalyticsDashboardKey)
	return keys
}

// budgetLocks hands out one mutex per budget. Entries are dropped once no caller holds them.
type budgetLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*budgetLock
}

type budgetLock struct {
	mu      sync.Mutex
	holders int
}

func newBudgetLocks() *budgetLocks {
	return &budgetLocks{locks: make(map[uuid.UUID]*budgetLock)}
}

func (l *budgetLocks) lock(budgetID uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[budgetID]
	if !ok {
		entry = &budgetLock{}
		l.locks[budgetID] = entry
	}
	entry.holders++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.holders--
		if entry.holders == 0 {
			delete(l.locks, budgetID)
		}
		l.mu.Unlock()
	}
}

func (l *budgetLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
