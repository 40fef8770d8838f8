package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRuleNotFound = errors.New("categorization rule not found")

type categorizationRuleRepository struct {
	db *gorm.DB
}

// NewCategorizationRuleRepository creates a new rule repository
func NewCategorizationRuleRepository(db *gorm.DB) CategorizationRuleRepositoryInterface {
	return &categorizationRuleRepository{db: db}
}

func (r *categorizationRuleRepository) Create(rule *models.CategorizationRule) error {
	if err := r.db.Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create categorization rule: %w", err)
	}
	return nil
}

func (r *categorizationRuleRepository) GetByID(id uuid.UUID) (*models.CategorizationRule, error) {
	var rule models.CategorizationRule
	if err := r.db.Where("id = ?", id).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get categorization rule: %w", err)
	}
	return &rule, nil
}

func (r *categorizationRuleRepository) ListByUser(userID uuid.UUID) ([]models.CategorizationRule, error) {
	var rules []models.CategorizationRule
	if err := r.db.Where("user_id = ?", userID).
		Order("priority DESC, created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list categorization rules: %w", err)
	}
	return rules, nil
}

// ListActive returns every active rule in match order: highest priority first, oldest first on ties
func (r *categorizationRuleRepository) ListActive() ([]models.CategorizationRule, error) {
	var rules []models.CategorizationRule
	if err := r.db.Where("is_active = ?", true).
		Order("priority DESC, created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list active categorization rules: %w", err)
	}
	return rules, nil
}

// Deactivate flips is_active off for a rule owned by userID
func (r *categorizationRuleRepository) Deactivate(id, userID uuid.UUID) error {
	result := r.db.Model(&models.CategorizationRule{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumns(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to deactivate categorization rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
