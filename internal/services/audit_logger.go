package services

import (
	"context"
	"log/slog"
	"time"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"

	"github.com/google/uuid"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogCategorizationCompleted(ctx context.Context, transactionID uuid.UUID, result *models.CategoryResult, durationMs int64) {
	attrs := []slog.Attr{
		slog.String("event_type", "categorization_completed"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("method", result.Method),
		slog.String("confidence", string(result.Confidence)),
		slog.Bool("requires_manual", result.RequiresManual),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if result.CategoryID != nil {
		attrs = append(attrs, slog.String("category_id", result.CategoryID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "categorization completed", attrs...)
}

func (al *AuditLogger) LogAIDegraded(ctx context.Context, transactionID uuid.UUID, outcome AIOutcome, errorMsg string) {
	al.logger.WarnContext(ctx, "ai categorization degraded",
		slog.String("event_type", "ai_degraded"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("outcome", string(outcome)),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRulesReloaded(ctx context.Context, version uint64, ruleCount int, durationMs int64) {
	al.logger.InfoContext(ctx, "categorization rules reloaded",
		slog.String("event_type", "rules_reloaded"),
		slog.Uint64("version", version),
		slog.Int("rule_count", ruleCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRuleCreated(ctx context.Context, ruleID, userID uuid.UUID, ruleType models.RuleType) {
	al.logger.InfoContext(ctx, "categorization rule created",
		slog.String("event_type", "rule_created"),
		slog.String("rule_id", ruleID.String()),
		slog.String("user_id", userID.String()),
		slog.String("rule_type", string(ruleType)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRuleDeactivated(ctx context.Context, ruleID, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "categorization rule deactivated",
		slog.String("event_type", "rule_deactivated"),
		slog.String("rule_id", ruleID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogManualCategoryOverride(ctx context.Context, transactionID, userID uuid.UUID, previousCategoryID *uuid.UUID, categoryID uuid.UUID) {
	attrs := []slog.Attr{
		slog.String("event_type", "manual_category_override"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if previousCategoryID != nil {
		attrs = append(attrs, slog.String("previous_category_id", previousCategoryID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "manual category override", attrs...)
}

func (al *AuditLogger) LogBudgetChanged(ctx context.Context, budgetID, userID uuid.UUID, action string) {
	al.logger.InfoContext(ctx, "budget changed",
		slog.String("event_type", "budget_changed"),
		slog.String("budget_id", budgetID.String()),
		slog.String("user_id", userID.String()),
		slog.String("action", action),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAlertDispatched(ctx context.Context, alert *models.BudgetAlert) {
	al.logger.InfoContext(ctx, "budget alert dispatched",
		slog.String("event_type", "alert_dispatched"),
		slog.String("alert_id", alert.ID.String()),
		slog.String("budget_id", alert.BudgetID.String()),
		slog.String("user_id", alert.UserID.String()),
		slog.String("alert_type", string(alert.AlertType)),
		slog.String("current_spending", alert.CurrentSpending.StringFixed(2)),
		slog.String("budget_limit", alert.BudgetLimit.StringFixed(2)),
		slog.String("message", alert.Message),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAlertDeliveryFailed(ctx context.Context, alertID uuid.UUID, errorMsg string) {
	al.logger.WarnContext(ctx, "budget alert delivery failed",
		slog.String("event_type", "alert_delivery_failed"),
		slog.String("alert_id", alertID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSubscriberFault(ctx context.Context, observer string, event TransactionEvent, transactionID uuid.UUID, errorMsg string) {
	al.logger.ErrorContext(ctx, "transaction observer failed",
		slog.String("event_type", "subscriber_fault"),
		slog.String("observer", observer),
		slog.String("event", string(event)),
		slog.String("transaction_id", transactionID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, from, to models.CircuitBreakerState) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", from.String()),
		slog.String("new_state", to.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBackfillBatchCompleted(ctx context.Context, result *dto.BackfillResult) {
	al.logger.InfoContext(ctx, "categorization backfill batch completed",
		slog.String("event_type", "backfill_batch_completed"),
		slog.Int("processed", result.Processed),
		slog.Int("categorized", result.Categorized),
		slog.Int("still_manual", result.StillManual),
		slog.Int("failed", result.Failed),
		slog.Int64("duration_ms", result.DurationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
