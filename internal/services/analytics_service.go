package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidDateRange = errors.New("start date must be before end date")

const dashboardTopCategories = 5

// CategorySummaryCacheKey is scoped under the category key the invalidation observer clears
func CategorySummaryCacheKey(categoryID, userID uuid.UUID, window models.PeriodWindow) string {
	return fmt.Sprintf("%s%s:%s:%d:%d", AnalyticsCategoryKeyPrefix, categoryID, userID, window.Start.Unix(), window.End.Unix())
}

// AccountSummaryCacheKey is scoped under the account key the invalidation observer clears
func AccountSummaryCacheKey(accountID uuid.UUID, window models.PeriodWindow) string {
	return fmt.Sprintf("%s%s:%d:%d", AnalyticsAccountKeyPrefix, accountID, window.Start.Unix(), window.End.Unix())
}

// DashboardCacheKey is scoped under the global dashboard key
func DashboardCacheKey(userID uuid.UUID) string {
	return AnalyticsDashboardKey + ":" + userID.String()
}

type AnalyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	alertRepo       repositories.BudgetAlertRepositoryInterface
	cache           *AnalyticsCache
	now             func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServiceInterface instance
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	alertRepo repositories.BudgetAlertRepositoryInterface,
	cache *AnalyticsCache,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
		alertRepo:       alertRepo,
		cache:           cache,
		now:             time.Now,
	}
}

func (s *AnalyticsService) GetCategorySummary(_ context.Context, userID, categoryID uuid.UUID, window models.PeriodWindow) (*models.CategorySummary, error) {
	if !window.Start.Before(window.End) {
		return nil, ErrInvalidDateRange
	}

	return cachedOrLoad(s.cache, CategorySummaryCacheKey(categoryID, userID, window), func() (*models.CategorySummary, error) {
		summary, err := s.transactionRepo.GetCategorySummary(userID, categoryID, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("failed to get category summary: %w", err)
		}
		return summary, nil
	})
}

func (s *AnalyticsService) GetAccountSummary(_ context.Context, userID, accountID uuid.UUID, window models.PeriodWindow) (*models.AccountSummary, error) {
	if !window.Start.Before(window.End) {
		return nil, ErrInvalidDateRange
	}

	if _, err := s.accountRepo.GetByIDForUser(accountID, userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return cachedOrLoad(s.cache, AccountSummaryCacheKey(accountID, window), func() (*models.AccountSummary, error) {
		summary, err := s.transactionRepo.GetAccountSummary(accountID, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("failed to get account summary: %w", err)
		}
		return summary, nil
	})
}

// GetDashboard summarizes the current calendar month for userID
func (s *AnalyticsService) GetDashboard(_ context.Context, userID uuid.UUID) (*models.DashboardSummary, error) {
	return cachedOrLoad(s.cache, DashboardCacheKey(userID), func() (*models.DashboardSummary, error) {
		return s.buildDashboard(userID)
	})
}

func (s *AnalyticsService) buildDashboard(userID uuid.UUID) (*models.DashboardSummary, error) {
	now := s.now()
	window := (&models.Budget{Period: models.BudgetPeriodMonthly}).PeriodWindow(now)

	dashboard := &models.DashboardSummary{
		UserID:        userID,
		Window:        window,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		GeneratedAt:   now,
	}

	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, account := range accounts {
		summary, err := s.transactionRepo.GetAccountSummary(account.ID, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("failed to get account summary: %w", err)
		}
		dashboard.TotalIncome = dashboard.TotalIncome.Add(summary.TotalIncome)
		dashboard.TotalExpenses = dashboard.TotalExpenses.Add(summary.TotalExpenses)
	}

	breakdown, err := s.transactionRepo.GetCategoryBreakdown(userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}
	if len(breakdown) > dashboardTopCategories {
		breakdown = breakdown[:dashboardTopCategories]
	}
	dashboard.TopCategories = breakdown

	if dashboard.Uncategorized, err = s.transactionRepo.CountUncategorized(userID); err != nil {
		return nil, fmt.Errorf("failed to count uncategorized transactions: %w", err)
	}
	if dashboard.UnreadAlerts, err = s.alertRepo.CountUnread(userID); err != nil {
		return nil, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	budgets, err := s.budgetRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	dashboard.Budgets = make([]models.BudgetStatus, 0, len(budgets))
	for i := range budgets {
		status, err := budgetStatus(s.transactionRepo, &budgets[i], now)
		if err != nil {
			return nil, err
		}
		dashboard.Budgets = append(dashboard.Budgets, *status)
	}

	return dashboard, nil
}
