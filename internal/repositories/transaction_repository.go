package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

const userAccountsSubquery = "account_id IN (SELECT id FROM accounts WHERE user_id = ? AND deleted_at IS NULL)"

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Omit("Account").Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID together with its account
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Account").Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update writes every mutable column, including a cleared category
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(transaction).
		Select("amount", "description", "merchant_name", "category_id", "confidence",
			"categorization_method", "transaction_date", "is_recurring", "updated_at").
		Updates(transaction)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// UpdateCategorization writes the classification triple in a single statement
func (r *transactionRepository) UpdateCategorization(transaction *models.Transaction) error {
	result := r.db.Model(transaction).
		Select("category_id", "confidence", "categorization_method", "updated_at").
		Updates(transaction)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction categorization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetWithFilters retrieves transactions with multiple filters, newest first
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.UserID != uuid.Nil {
		query = query.Where(userAccountsSubquery, filters.UserID)
	}
	if filters.AccountID != uuid.Nil {
		query = query.Where("account_id = ?", filters.AccountID)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Uncategorized {
		query = query.Where("category_id IS NULL")
	}
	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("transaction_date < ?", *filters.EndDate)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.MerchantName != "" {
		query = query.Where("LOWER(merchant_name) LIKE ?", "%"+strings.ToLower(filters.MerchantName)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	query = query.Offset(filters.Offset).Order("transaction_date DESC, created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetUncategorized returns the oldest transactions still waiting for a category
func (r *transactionRepository) GetUncategorized(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Account").
		Where("category_id IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get uncategorized transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) CountUncategorized(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("category_id IS NULL").
		Where(userAccountsSubquery, userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count uncategorized transactions: %w", err)
	}
	return count, nil
}

// SumExpenses totals the user's spending in a category inside [window.Start, window.End).
// Spending is reported as a positive number; income in the category is ignored.
func (r *transactionRepository) SumExpenses(userID, categoryID uuid.UUID, window models.PeriodWindow) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := `
		SELECT COALESCE(SUM(-amount), 0) AS total
		FROM transactions
		WHERE category_id = ?
			AND amount < 0
			AND transaction_date >= ?
			AND transaction_date < ?
			AND ` + userAccountsSubquery

	if err := r.db.Raw(query, categoryID, window.Start, window.End, userID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total, nil
}

// GetCategorySummary aggregates a single category for a user
func (r *transactionRepository) GetCategorySummary(userID, categoryID uuid.UUID, startDate, endDate time.Time) (*models.CategorySummary, error) {
	var result struct {
		TransactionCount int64
		TotalAmount      decimal.Decimal
		AverageAmount    decimal.Decimal
	}

	query := `
		SELECT
			COUNT(*) AS transaction_count,
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(AVG(amount), 0) AS average_amount
		FROM transactions
		WHERE category_id = ?
			AND transaction_date >= ?
			AND transaction_date < ?
			AND ` + userAccountsSubquery

	if err := r.db.Raw(query, categoryID, startDate, endDate, userID).
		Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return &models.CategorySummary{
		CategoryID:       categoryID,
		TransactionCount: result.TransactionCount,
		TotalAmount:      result.TotalAmount,
		AverageAmount:    result.AverageAmount.Round(2),
	}, nil
}

// GetCategoryBreakdown groups a user's categorized transactions, heaviest spending first
func (r *transactionRepository) GetCategoryBreakdown(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			category_id,
			COUNT(*) AS transaction_count,
			SUM(amount) AS total_amount,
			AVG(amount) AS average_amount
		FROM transactions
		WHERE category_id IS NOT NULL
			AND transaction_date >= ?
			AND transaction_date < ?
			AND ` + userAccountsSubquery + `
		GROUP BY category_id
		ORDER BY total_amount ASC
	`

	if err := r.db.Raw(query, startDate, endDate, userID).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	for i := range summaries {
		summaries[i].AverageAmount = summaries[i].AverageAmount.Round(2)
	}

	return summaries, nil
}

// GetAccountSummary aggregates income, expenses and per-category totals for one account
func (r *transactionRepository) GetAccountSummary(accountID uuid.UUID, startDate, endDate time.Time) (*models.AccountSummary, error) {
	var totals struct {
		TotalIncome      decimal.Decimal
		TotalExpenses    decimal.Decimal
		TransactionCount int64
	}

	totalsQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS total_expenses,
			COUNT(*) AS transaction_count
		FROM transactions
		WHERE account_id = ?
			AND transaction_date >= ?
			AND transaction_date < ?
	`

	if err := r.db.Raw(totalsQuery, accountID, startDate, endDate).
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get account totals: %w", err)
	}

	var categories []models.CategorySummary

	categoriesQuery := `
		SELECT
			category_id,
			COUNT(*) AS transaction_count,
			SUM(amount) AS total_amount,
			AVG(amount) AS average_amount
		FROM transactions
		WHERE account_id = ?
			AND category_id IS NOT NULL
			AND transaction_date >= ?
			AND transaction_date < ?
		GROUP BY category_id
		ORDER BY total_amount ASC
	`

	if err := r.db.Raw(categoriesQuery, accountID, startDate, endDate).
		Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get account category summary: %w", err)
	}

	for i := range categories {
		categories[i].AverageAmount = categories[i].AverageAmount.Round(2)
	}

	return &models.AccountSummary{
		AccountID:        accountID,
		Window:           models.PeriodWindow{Start: startDate, End: endDate},
		TotalIncome:      totals.TotalIncome,
		TotalExpenses:    totals.TotalExpenses,
		NetCashFlow:      totals.TotalIncome.Sub(totals.TotalExpenses),
		TransactionCount: totals.TransactionCount,
		Categories:       categories,
	}, nil
}
