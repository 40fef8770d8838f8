package services

import (
	"context"
	"time"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorizationStrategyInterface is one matching algorithm. A nil result means no match.
type CategorizationStrategyInterface interface {
	Name() string
	Categorize(ctx context.Context, transaction *models.Transaction) *models.CategoryResult
}

// CategorizationStageInterface is one link of the categorization chain
type CategorizationStageInterface interface {
	Stage() ChainState
	Process(ctx context.Context, transaction *models.Transaction) *models.CategoryResult
}

// CategorizationServiceInterface owns the live chain and the rule tables behind it
type CategorizationServiceInterface interface {
	Categorize(ctx context.Context, transaction *models.Transaction) *models.CategoryResult
	CategorizeBatch(ctx context.Context, transactions []*models.Transaction) ([]*models.CategoryResult, error)
	ReloadRules(ctx context.Context) (*dto.RulesReloadResponse, error)
	RulesVersion() uint64
	CreateRule(ctx context.Context, userID uuid.UUID, req *dto.CreateRuleRequest) (*models.CategorizationRule, error)
	ListRules(ctx context.Context, userID uuid.UUID) ([]models.CategorizationRule, error)
	DeactivateRule(ctx context.Context, userID, ruleID uuid.UUID) error
}

// CategorizationBackfillWorkerInterface re-runs transactions that are still waiting for a category
type CategorizationBackfillWorkerInterface interface {
	Start(ctx context.Context)
	Stop()
	ProcessBatch(ctx context.Context) (*dto.BackfillResult, error)
}

// CategoryServiceInterface lists categories and seeds the system set
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	EnsureSystemCategories(ctx context.Context) (int, error)
}

// TransactionServiceInterface is the write path for transactions
type TransactionServiceInterface interface {
	RecordTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	OverrideCategory(ctx context.Context, userID, transactionID, categoryID uuid.UUID) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
	PreviewCategorization(ctx context.Context, userID uuid.UUID, req *dto.CategorizePreviewRequest) (*dto.CategorizePreviewResponse, error)
}

// AlertFactoryInterface renders budget alerts. Implementations perform no I/O.
type AlertFactoryInterface interface {
	CreateAlert(budget *models.Budget, currentSpending decimal.Decimal, alertType models.AlertType) *models.BudgetAlert
}

// BudgetServiceInterface manages budgets and the alerts raised against them
type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error)
	GetBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error
	GetBudgetStatus(ctx context.Context, userID, budgetID uuid.UUID) (*models.BudgetStatus, error)
	ListAlerts(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) (*dto.ListAlertsResponse, error)
	MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) error
}

// AnalyticsServiceInterface serves cached read models over transactions
type AnalyticsServiceInterface interface {
	GetCategorySummary(ctx context.Context, userID, categoryID uuid.UUID, window models.PeriodWindow) (*models.CategorySummary, error)
	GetAccountSummary(ctx context.Context, userID, accountID uuid.UUID, window models.PeriodWindow) (*models.AccountSummary, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error)
}

// ReportInterface is a rendered report ready to be downloaded
type ReportInterface interface {
	Generate() ([]byte, error)
	Filename() string
	ContentType() string
}

// ReportFactoryInterface picks the report implementation for a report type
type ReportFactoryInterface interface {
	CreateReport(reportType ReportType, data *ReportData, opts ReportOptions) (ReportInterface, error)
}

// ReportServiceInterface gathers report data and renders it through the report factory
type ReportServiceInterface interface {
	GenerateReport(ctx context.Context, userID uuid.UUID, reportType string, opts ReportOptions) (ReportInterface, error)
}

// TransactionObserverInterface receives transaction lifecycle events from the event bus
type TransactionObserverInterface interface {
	Name() string
	OnCreated(ctx context.Context, transaction *models.Transaction) error
	OnUpdated(ctx context.Context, transaction *models.Transaction) error
	OnDeleted(ctx context.Context, transaction *models.Transaction) error
}

// TransactionSubjectInterface is the transaction event bus
type TransactionSubjectInterface interface {
	Attach(observer TransactionObserverInterface)
	Detach(observer TransactionObserverInterface)
	NotifyCreated(ctx context.Context, transaction *models.Transaction)
	NotifyUpdated(ctx context.Context, transaction *models.Transaction)
	NotifyDeleted(ctx context.Context, transaction *models.Transaction)
	Observers() []TransactionObserverInterface
}

// SubscriberFaultReporterInterface receives observer failures the event bus isolated
type SubscriberFaultReporterInterface interface {
	ReportFault(ctx context.Context, observer string, event TransactionEvent, transactionID uuid.UUID, err error)
}

// NotificationSinkInterface delivers a budget alert somewhere
type NotificationSinkInterface interface {
	SendAlert(ctx context.Context, alert *models.BudgetAlert) error
}

// CacheInvalidatorInterface drops a cached key and everything scoped beneath it
type CacheInvalidatorInterface interface {
	Invalidate(key string)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// AuditLoggerInterface writes structured audit events
type AuditLoggerInterface interface {
	LogCategorizationCompleted(ctx context.Context, transactionID uuid.UUID, result *models.CategoryResult, durationMs int64)
	LogAIDegraded(ctx context.Context, transactionID uuid.UUID, outcome AIOutcome, errorMsg string)
	LogRulesReloaded(ctx context.Context, version uint64, ruleCount int, durationMs int64)
	LogRuleCreated(ctx context.Context, ruleID, userID uuid.UUID, ruleType models.RuleType)
	LogRuleDeactivated(ctx context.Context, ruleID, userID uuid.UUID)
	LogManualCategoryOverride(ctx context.Context, transactionID, userID uuid.UUID, previousCategoryID *uuid.UUID, categoryID uuid.UUID)
	LogBudgetChanged(ctx context.Context, budgetID, userID uuid.UUID, action string)
	LogAlertDispatched(ctx context.Context, alert *models.BudgetAlert)
	LogAlertDeliveryFailed(ctx context.Context, alertID uuid.UUID, errorMsg string)
	LogSubscriberFault(ctx context.Context, observer string, event TransactionEvent, transactionID uuid.UUID, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, from, to models.CircuitBreakerState)
	LogBackfillBatchCompleted(ctx context.Context, result *dto.BackfillResult)
}

// CircuitBreakerInterface guards calls to an unreliable dependency
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// TokenServiceInterface verifies bearer tokens and, outside production, mints them
type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, scopes []string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.AccessClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
