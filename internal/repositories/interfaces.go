package repositories

import (
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	UpdateCategorization(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetUncategorized(limit int) ([]models.Transaction, error)
	CountUncategorized(userID uuid.UUID) (int64, error)

	// Aggregations used by budget evaluation, analytics and reports
	SumExpenses(userID, categoryID uuid.UUID, window models.PeriodWindow) (decimal.Decimal, error)
	GetCategorySummary(userID, categoryID uuid.UUID, startDate, endDate time.Time) (*models.CategorySummary, error)
	GetCategoryBreakdown(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
	GetAccountSummary(accountID uuid.UUID, startDate, endDate time.Time) (*models.AccountSummary, error)
}

// CategoryRepositoryInterface defines the contract for category lookups
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	List() ([]models.Category, error)
}

// CategorizationRuleRepositoryInterface defines the contract for rule storage
type CategorizationRuleRepositoryInterface interface {
	Create(rule *models.CategorizationRule) error
	GetByID(id uuid.UUID) (*models.CategorizationRule, error)
	ListByUser(userID uuid.UUID) ([]models.CategorizationRule, error)
	ListActive() ([]models.CategorizationRule, error)
	Deactivate(id, userID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Budget, error)
	FindByCategory(userID, categoryID uuid.UUID) (*models.Budget, error)
	ListByUser(userID uuid.UUID) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id, userID uuid.UUID) error
}

// BudgetAlertRepositoryInterface defines the contract for alert storage
type BudgetAlertRepositoryInterface interface {
	Create(alert *models.BudgetAlert) error
	ListByUser(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.BudgetAlert, int64, error)
	LatestForBudget(budgetID uuid.UUID, since time.Time) (*models.BudgetAlert, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(id, userID uuid.UUID) error
}
