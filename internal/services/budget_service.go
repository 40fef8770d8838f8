package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"
	"budget-watch/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetExists        = errors.New("a budget already exists for this category")
	ErrAlertNotFound       = errors.New("budget alert not found")
	ErrInvalidBudgetAmount = errors.New("budget amount must be a positive decimal number")
	ErrInvalidThreshold    = errors.New("alert threshold must be a decimal in (0, 1]")
)

const (
	defaultAlertPageSize = 20
	maxAlertPageSize     = 100
)

// Budget audit actions
const (
	BudgetActionCreated = "created"
	BudgetActionUpdated = "updated"
	BudgetActionDeleted = "deleted"
)

type BudgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	alertRepo       repositories.BudgetAlertRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	cache           CacheInvalidatorInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	alertRepo repositories.BudgetAlertRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	cache CacheInvalidatorInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		alertRepo:       alertRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
		auditLogger:     auditLogger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// CreateBudget creates the caller's budget for a category. One budget per category.
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if _, err := s.budgetRepo.FindByCategory(userID, categoryID); err == nil {
		return nil, ErrBudgetExists
	} else if !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		StartDate:  s.now(),
	}
	if req.StartDate != nil && !req.StartDate.IsZero() {
		budget.StartDate = *req.StartDate
	}
	if err := applyBudgetFields(budget, &req.Amount, optionalString(req.Period), req.AlertThreshold); err != nil {
		return nil, err
	}

	budget.ApplyDefaults()
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.changed(ctx, budget, BudgetActionCreated)
	return budget, nil
}

func (s *BudgetService) GetBudget(_ context.Context, userID, budgetID uuid.UUID) (*models.Budget, error) {
	return s.ownedBudget(budgetID, userID)
}

func (s *BudgetService) ListBudgets(_ context.Context, userID uuid.UUID) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.ownedBudget(budgetID, userID)
	if err != nil {
		return nil, err
	}

	if err := applyBudgetFields(budget, req.Amount, req.Period, req.AlertThreshold); err != nil {
		return nil, err
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Update(budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	s.changed(ctx, budget, BudgetActionUpdated)
	return budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	budget, err := s.ownedBudget(budgetID, userID)
	if err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(budget.ID, userID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.changed(ctx, budget, BudgetActionDeleted)
	return nil
}

// GetBudgetStatus reports spending against the budget for the current period
func (s *BudgetService) GetBudgetStatus(_ context.Context, userID, budgetID uuid.UUID) (*models.BudgetStatus, error) {
	budget, err := s.ownedBudget(budgetID, userID)
	if err != nil {
		return nil, err
	}
	return budgetStatus(s.transactionRepo, budget, s.now())
}

// ListAlerts pages through the caller's alerts, newest first
func (s *BudgetService) ListAlerts(_ context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) (*dto.ListAlertsResponse, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultAlertPageSize
	}
	if limit > maxAlertPageSize {
		limit = maxAlertPageSize
	}

	alerts, total, err := s.alertRepo.ListByUser(userID, unreadOnly, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	unread, err := s.alertRepo.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	return &dto.ListAlertsResponse{
		Alerts:      alerts,
		UnreadCount: unread,
		Pagination: dto.PaginationInfo{
			Offset:  offset,
			Limit:   limit,
			Total:   total,
			HasMore: int64(offset+len(alerts)) < total,
		},
	}, nil
}

func (s *BudgetService) MarkAlertRead(_ context.Context, userID, alertID uuid.UUID) error {
	if err := s.alertRepo.MarkRead(alertID, userID); err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return ErrAlertNotFound
		}
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	s.metrics.IncrementCounter("budget_alert.read", nil)
	return nil
}

func (s *BudgetService) ownedBudget(budgetID, userID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByIDForUser(budgetID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

func (s *BudgetService) changed(ctx context.Context, budget *models.Budget, action string) {
	s.auditLogger.LogBudgetChanged(ctx, budget.ID, budget.UserID, action)
	s.metrics.IncrementCounter("budget.changed", map[string]string{"action": action})
	if s.cache != nil {
		s.cache.Invalidate(DashboardCacheKey(budget.UserID))
	}
}

// budgetStatus computes the read model shared by the budget and analytics services
func budgetStatus(transactionRepo repositories.TransactionRepositoryInterface, budget *models.Budget, now time.Time) (*models.BudgetStatus, error) {
	window := budget.PeriodWindow(now)
	spending, err := transactionRepo.SumExpenses(budget.UserID, budget.CategoryID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget spending: %w", err)
	}

	status := &models.BudgetStatus{
		Budget:          budget,
		Window:          window,
		CurrentSpending: spending,
		Remaining:       budget.RemainingAmount(spending),
		PercentUsed:     budget.PercentUsed(spending),
	}
	if alertType, crossed := EvaluateThreshold(budget, spending); crossed {
		status.AlertType = &alertType
	}
	return status, nil
}

func applyBudgetFields(budget *models.Budget, amount, period, threshold *string) error {
	if amount != nil {
		value, err := decimal.NewFromString(strings.TrimSpace(*amount))
		if err != nil || !value.IsPositive() {
			return ErrInvalidBudgetAmount
		}
		budget.Amount = value.Round(2)
	}

	if period != nil && strings.TrimSpace(*period) != "" {
		parsed, err := models.ParseBudgetPeriod(*period)
		if err != nil {
			return err
		}
		budget.Period = parsed
	}

	if threshold != nil && strings.TrimSpace(*threshold) != "" {
		value, err := decimal.NewFromString(strings.TrimSpace(*threshold))
		if err != nil || !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(1)) {
			return ErrInvalidThreshold
		}
		budget.AlertThreshold = value
	}

	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
