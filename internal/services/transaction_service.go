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
	ErrTransactionNil      = errors.New("transaction cannot be nil")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAmount       = errors.New("amount must be a non-zero decimal number")
	ErrCategoryNotChanged  = errors.New("category was not changed")
)

// TransactionService is the write path for transactions. Every write is persisted
// before observers are notified, and an observer fault never undoes the write.
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	categorization  CategorizationServiceInterface
	events          TransactionSubjectInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewTransactionService creates a new TransactionServiceInterface instance
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	categorization CategorizationServiceInterface,
	events TransactionSubjectInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		categorization:  categorization,
		events:          events,
		auditLogger:     auditLogger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// RecordTransaction categorizes and stores a transaction on one of the caller's accounts
func (s *TransactionService) RecordTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	account, err := s.ownedAccount(req.AccountID, userID)
	if err != nil {
		return nil, err
	}

	amount, err := parseTransactionAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	transactionDate := s.now()
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		transactionDate = *req.TransactionDate
	}

	transaction := &models.Transaction{
		AccountID:       account.ID,
		Amount:          amount,
		Description:     strings.TrimSpace(req.Description),
		MerchantName:    strings.TrimSpace(req.MerchantName),
		TransactionDate: transactionDate,
		IsRecurring:     req.IsRecurring,
		Account:         *account,
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := transaction.ApplyCategorization(s.categorization.Categorize(ctx, transaction)); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.recorded", map[string]string{
		"method": transaction.CategorizationMethod,
	})
	s.events.NotifyCreated(ctx, transaction)

	return transaction, nil
}

// GetTransaction returns a transaction owned by userID
func (s *TransactionService) GetTransaction(_ context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.ownedTransaction(transactionID, userID)
}

// ListTransactions lists the caller's transactions. filters.UserID must be set;
// an AccountID filter is checked against it.
func (s *TransactionService) ListTransactions(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.UserID == uuid.Nil {
		return nil, 0, ErrAccountNotFound
	}

	if filters.AccountID != uuid.Nil {
		if _, err := s.ownedAccount(filters.AccountID.String(), filters.UserID); err != nil {
			return nil, 0, err
		}
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// UpdateTransaction changes descriptive fields. Transactions without a user-verified
// category are run through the chain again.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.ownedTransaction(transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		amount, err := parseTransactionAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		transaction.Amount = amount
	}
	if req.Description != nil {
		transaction.Description = strings.TrimSpace(*req.Description)
	}
	if req.MerchantName != nil {
		transaction.MerchantName = strings.TrimSpace(*req.MerchantName)
	}
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		transaction.TransactionDate = *req.TransactionDate
	}
	if req.IsRecurring != nil {
		transaction.IsRecurring = *req.IsRecurring
	}

	if !transaction.IsUserVerified() {
		if err := transaction.ApplyCategorization(s.categorization.Categorize(ctx, transaction)); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.updated", nil)
	s.events.NotifyUpdated(ctx, transaction)

	return transaction, nil
}

// OverrideCategory assigns a category chosen by the owner
func (s *TransactionService) OverrideCategory(ctx context.Context, userID, transactionID, categoryID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.ownedTransaction(transactionID, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if transaction.IsUserVerified() && transaction.CategoryID != nil && *transaction.CategoryID == categoryID {
		return nil, ErrCategoryNotChanged
	}

	previous := transaction.CategoryID
	transaction.AssignManualCategory(categoryID)

	if err := s.transactionRepo.UpdateCategorization(transaction); err != nil {
		return nil, fmt.Errorf("failed to override category: %w", err)
	}

	s.auditLogger.LogManualCategoryOverride(ctx, transaction.ID, userID, previous, categoryID)
	s.metrics.IncrementCounter("transaction.category_override", nil)
	s.events.NotifyUpdated(ctx, transaction)

	return transaction, nil
}

// DeleteTransaction removes a transaction owned by userID
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	transaction, err := s.ownedTransaction(transactionID, userID)
	if err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transaction.ID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.deleted", nil)
	s.events.NotifyDeleted(ctx, transaction)

	return nil
}

// PreviewCategorization runs the chain against the caller's rules without storing anything
func (s *TransactionService) PreviewCategorization(ctx context.Context, userID uuid.UUID, req *dto.CategorizePreviewRequest) (*dto.CategorizePreviewResponse, error) {
	amount, err := parseTransactionAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Amount:          amount,
		Description:     strings.TrimSpace(req.Description),
		MerchantName:    strings.TrimSpace(req.MerchantName),
		TransactionDate: s.now(),
		Account:         models.Account{UserID: userID},
	}

	return &dto.CategorizePreviewResponse{
		Result:       s.categorization.Categorize(ctx, transaction),
		RulesVersion: s.categorization.RulesVersion(),
	}, nil
}

func (s *TransactionService) ownedAccount(accountID string, userID uuid.UUID) (*models.Account, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	account, err := s.accountRepo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ownedTransaction hides transactions of other users behind ErrTransactionNotFound
func (s *TransactionService) ownedTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.OwnerID() != userID {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

func parseTransactionAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	amount = amount.Round(2)
	if amount.IsZero() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
