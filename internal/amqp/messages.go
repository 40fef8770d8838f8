package amqp

import (
	"encoding/json"
	"time"

	"budget-watch/internal/models"

	"github.com/google/uuid"
)

// BudgetAlertMessage is the payload published for every budget alert
type BudgetAlertMessage struct {
	AlertID         uuid.UUID `json:"alert_id"`
	BudgetID        uuid.UUID `json:"budget_id"`
	UserID          uuid.UUID `json:"user_id"`
	AlertType       string    `json:"alert_type"`
	Message         string    `json:"message"`
	CurrentSpending string    `json:"current_spending"`
	BudgetLimit     string    `json:"budget_limit"`
	CreatedAt       time.Time `json:"created_at"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewBudgetAlertMessage builds the wire message for an alert
func NewBudgetAlertMessage(alert *models.BudgetAlert) *BudgetAlertMessage {
	return &BudgetAlertMessage{
		AlertID:         alert.ID,
		BudgetID:        alert.BudgetID,
		UserID:          alert.UserID,
		AlertType:       string(alert.AlertType),
		Message:         alert.Message,
		CurrentSpending: alert.CurrentSpending.StringFixed(2),
		BudgetLimit:     alert.BudgetLimit.StringFixed(2),
		CreatedAt:       alert.CreatedAt,
		Timestamp:       time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *BudgetAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetAlertMessageFromJSON decodes a message published by AlertPublisher
func BudgetAlertMessageFromJSON(data []byte) (*BudgetAlertMessage, error) {
	var msg BudgetAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
