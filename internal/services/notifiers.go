package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories"
)

var ErrNilAlert = errors.New("alert cannot be nil")

// AlertStore persists alerts so they can be listed and marked read
type AlertStore struct {
	alertRepo repositories.BudgetAlertRepositoryInterface
}

// NewAlertStore creates a sink backed by the alert repository
func NewAlertStore(alertRepo repositories.BudgetAlertRepositoryInterface) NotificationSinkInterface {
	return &AlertStore{alertRepo: alertRepo}
}

func (s *AlertStore) SendAlert(_ context.Context, alert *models.BudgetAlert) error {
	if alert == nil {
		return ErrNilAlert
	}
	if err := s.alertRepo.Create(alert); err != nil {
		return fmt.Errorf("failed to store alert: %w", err)
	}
	return nil
}

// LogNotifier writes alerts to the audit log
type LogNotifier struct {
	auditLogger AuditLoggerInterface
}

// NewLogNotifier creates a sink that only logs
func NewLogNotifier(auditLogger AuditLoggerInterface) NotificationSinkInterface {
	return &LogNotifier{auditLogger: auditLogger}
}

func (n *LogNotifier) SendAlert(ctx context.Context, alert *models.BudgetAlert) error {
	if alert == nil {
		return ErrNilAlert
	}
	n.auditLogger.LogAlertDispatched(ctx, alert)
	return nil
}

type namedSink struct {
	name string
	sink NotificationSinkInterface
}

// MultiNotifier delivers every alert to all of its sinks in order. A failing sink
// does not stop the others; all failures are returned joined.
type MultiNotifier struct {
	sinks       []namedSink
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
}

// NewMultiNotifier creates an empty fan-out sink
func NewMultiNotifier(metrics MetricsRecorderInterface, auditLogger AuditLoggerInterface) *MultiNotifier {
	return &MultiNotifier{
		metrics:     metrics,
		auditLogger: auditLogger,
	}
}

// Add appends a sink. Nil sinks are ignored.
func (m *MultiNotifier) Add(name string, sink NotificationSinkInterface) *MultiNotifier {
	if sink != nil {
		m.sinks = append(m.sinks, namedSink{name: name, sink: sink})
	}
	return m
}

// Len returns the number of sinks
func (m *MultiNotifier) Len() int {
	return len(m.sinks)
}

func (m *MultiNotifier) SendAlert(ctx context.Context, alert *models.BudgetAlert) error {
	if alert == nil {
		return ErrNilAlert
	}

	var errs []error
	for _, s := range m.sinks {
		if err := s.sink.SendAlert(ctx, alert); err != nil {
			slog.Warn("alert sink failed", "sink", s.name, "alert_id", alert.ID, "error", err)
			m.metrics.IncrementCounter("budget_alert.delivery", map[string]string{"sink": s.name, "status": "failed"})
			m.auditLogger.LogAlertDeliveryFailed(ctx, alert.ID, fmt.Sprintf("%s: %v", s.name, err))
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		m.metrics.IncrementCounter("budget_alert.delivery", map[string]string{"sink": s.name, "status": "delivered"})
	}

	return errors.Join(errs...)
}
