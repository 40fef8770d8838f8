package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAlertNotFound = errors.New("budget alert not found")

type budgetAlertRepository struct {
	db *gorm.DB
}

// NewBudgetAlertRepository creates a new alert repository
func NewBudgetAlertRepository(db *gorm.DB) BudgetAlertRepositoryInterface {
	return &budgetAlertRepository{db: db}
}

// Create inserts an alert. Alerts are never updated apart from IsRead.
func (r *budgetAlertRepository) Create(alert *models.BudgetAlert) error {
	if err := r.db.Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create budget alert: %w", err)
	}
	return nil
}

func (r *budgetAlertRepository) ListByUser(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.BudgetAlert, int64, error) {
	var alerts []models.BudgetAlert
	var total int64

	query := r.db.Model(&models.BudgetAlert{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count budget alerts: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list budget alerts: %w", err)
	}

	return alerts, total, nil
}

// LatestForBudget returns the newest alert raised for a budget at or after since
func (r *budgetAlertRepository) LatestForBudget(budgetID uuid.UUID, since time.Time) (*models.BudgetAlert, error) {
	var alert models.BudgetAlert
	if err := r.db.Where("budget_id = ? AND created_at >= ?", budgetID, since).
		Order("created_at DESC").
		First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get latest budget alert: %w", err)
	}
	return &alert, nil
}

func (r *budgetAlertRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.BudgetAlert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return count, nil
}

func (r *budgetAlertRepository) MarkRead(id, userID uuid.UUID) error {
	result := r.db.Model(&models.BudgetAlert{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark alert read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
