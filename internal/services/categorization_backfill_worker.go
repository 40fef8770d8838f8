package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"
	"budget-watch/internal/repositories"
)

var ErrBackfillAlreadyRunning = errors.New("backfill worker already running")

const (
	defaultBackfillInterval  = 5 * time.Minute
	defaultBackfillBatchSize = 200
)

// CategorizationBackfillWorker periodically re-runs transactions that are still
// waiting for a category, typically because the AI stage was unavailable when they
// were recorded. Newly categorized transactions are announced as updates.
type CategorizationBackfillWorker struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categorization  CategorizationServiceInterface
	events          TransactionSubjectInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	interval        time.Duration
	batchSize       int
	batchMu         sync.Mutex
	mu              sync.Mutex
	cancel          context.CancelFunc
	done            chan struct{}
	logger          *slog.Logger
}

// NewCategorizationBackfillWorker creates a backfill worker
func NewCategorizationBackfillWorker(
	transactionRepo repositories.TransactionRepositoryInterface,
	categorization CategorizationServiceInterface,
	events TransactionSubjectInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	interval time.Duration,
	batchSize int,
) CategorizationBackfillWorkerInterface {
	if interval <= 0 {
		interval = defaultBackfillInterval
	}
	if batchSize <= 0 {
		batchSize = defaultBackfillBatchSize
	}

	return &CategorizationBackfillWorker{
		transactionRepo: transactionRepo,
		categorization:  categorization,
		events:          events,
		auditLogger:     auditLogger,
		metrics:         metrics,
		interval:        interval,
		batchSize:       batchSize,
		logger:          slog.Default(),
	}
}

// Start launches the ticker loop. It returns immediately; a second Start while
// running is ignored.
func (w *CategorizationBackfillWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.logger.Warn("backfill worker start ignored", slog.String("error", ErrBackfillAlreadyRunning.Error()))
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.Info("starting categorization backfill worker",
		slog.Duration("interval", w.interval),
		slog.Int("batch_size", w.batchSize),
	)

	go w.run(ctx, w.done)
}

func (w *CategorizationBackfillWorker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("categorization backfill worker stopped")
			return

		case <-ticker.C:
			if _, err := w.ProcessBatch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Error("categorization backfill batch failed",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// Stop cancels the loop and waits for the running batch to finish
func (w *CategorizationBackfillWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// ProcessBatch re-categorizes the oldest uncategorized transactions once.
// Batches never overlap; a manual trigger waits for a running tick.
func (w *CategorizationBackfillWorker) ProcessBatch(ctx context.Context) (*dto.BackfillResult, error) {
	w.batchMu.Lock()
	defer w.batchMu.Unlock()

	start := time.Now()

	pending, err := w.transactionRepo.GetUncategorized(w.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch uncategorized transactions: %w", err)
	}

	transactions := make([]*models.Transaction, len(pending))
	for i := range pending {
		transactions[i] = &pending[i]
	}

	results, err := w.categorization.CategorizeBatch(ctx, transactions)
	if err != nil {
		return nil, err
	}

	result := &dto.BackfillResult{Processed: len(transactions)}
	for i, transaction := range transactions {
		if !results[i].IsMatch() {
			result.StillManual++
			continue
		}

		if err := w.store(ctx, transaction, results[i]); err != nil {
			result.Failed++
			w.logger.Error("failed to store backfilled category",
				slog.String("transaction_id", transaction.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Categorized++
	}

	result.DurationMs = time.Since(start).Milliseconds()

	w.metrics.RecordProcessingTime("categorization.backfill", time.Since(start))
	w.metrics.IncrementCounter("categorization.backfill.batches", nil)
	w.metrics.RecordGauge("categorization.backfill.categorized", float64(result.Categorized), nil)
	w.auditLogger.LogBackfillBatchCompleted(ctx, result)

	return result, nil
}

func (w *CategorizationBackfillWorker) store(ctx context.Context, transaction *models.Transaction, result *models.CategoryResult) error {
	if err := transaction.ApplyCategorization(result); err != nil {
		return err
	}
	if err := w.transactionRepo.UpdateCategorization(transaction); err != nil {
		return err
	}
	w.events.NotifyUpdated(ctx, transaction)
	return nil
}
