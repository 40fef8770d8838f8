package services

import (
	"context"
	"fmt"
	"sync"

	"budget-watch/internal/models"

	"github.com/google/uuid"
)

// TransactionEvent names a transaction lifecycle event
type TransactionEvent string

const (
	TransactionEventCreated TransactionEvent = "created"
	TransactionEventUpdated TransactionEvent = "updated"
	TransactionEventDeleted TransactionEvent = "deleted"
)

// TransactionSubject fans transaction events out to its observers.
// Observers run synchronously in attach order. A failing or panicking observer is
// reported and skipped; it never stops delivery to the rest.
type TransactionSubject struct {
	mu        sync.RWMutex
	observers []TransactionObserverInterface
	faults    SubscriberFaultReporterInterface
}

// NewTransactionSubject creates an event bus. A nil fault reporter drops faults silently.
func NewTransactionSubject(faults SubscriberFaultReporterInterface) TransactionSubjectInterface {
	return &TransactionSubject{faults: faults}
}

// Attach adds observer at the end. Attaching an observer twice has no effect.
func (s *TransactionSubject) Attach(observer TransactionObserverInterface) {
	if observer == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.observers {
		if existing == observer {
			return
		}
	}
	s.observers = append(s.observers, observer)
}

// Detach removes observer. Detaching an unknown observer has no effect.
func (s *TransactionSubject) Detach(observer TransactionObserverInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.observers {
		if existing == observer {
			observers := make([]TransactionObserverInterface, 0, len(s.observers)-1)
			observers = append(observers, s.observers[:i]...)
			s.observers = append(observers, s.observers[i+1:]...)
			return
		}
	}
}

// Observers returns a copy of the observers in delivery order
func (s *TransactionSubject) Observers() []TransactionObserverInterface {
	s.mu.RLock()
	defer s.mu.RUnlock()

	observers := make([]TransactionObserverInterface, len(s.observers))
	copy(observers, s.observers)
	return observers
}

func (s *TransactionSubject) NotifyCreated(ctx context.Context, transaction *models.Transaction) {
	s.notify(ctx, TransactionEventCreated, transaction)
}

func (s *TransactionSubject) NotifyUpdated(ctx context.Context, transaction *models.Transaction) {
	s.notify(ctx, TransactionEventUpdated, transaction)
}

func (s *TransactionSubject) NotifyDeleted(ctx context.Context, transaction *models.Transaction) {
	s.notify(ctx, TransactionEventDeleted, transaction)
}

// notify delivers to a snapshot of the observers, so attach and detach during
// delivery only affect later events
func (s *TransactionSubject) notify(ctx context.Context, event TransactionEvent, transaction *models.Transaction) {
	if transaction == nil {
		return
	}

	for _, observer := range s.Observers() {
		if err := deliver(ctx, observer, event, transaction); err != nil {
			s.reportFault(ctx, observer.Name(), event, transaction.ID, err)
		}
	}
}

func deliver(ctx context.Context, observer TransactionObserverInterface, event TransactionEvent, transaction *models.Transaction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panicked: %v", r)
		}
	}()

	switch event {
	case TransactionEventCreated:
		return observer.OnCreated(ctx, transaction)
	case TransactionEventUpdated:
		return observer.OnUpdated(ctx, transaction)
	case TransactionEventDeleted:
		return observer.OnDeleted(ctx, transaction)
	default:
		return fmt.Errorf("unknown transaction event %q", event)
	}
}

func (s *TransactionSubject) reportFault(ctx context.Context, observer string, event TransactionEvent, transactionID uuid.UUID, err error) {
	if s.faults == nil {
		return
	}
	s.faults.ReportFault(ctx, observer, event, transactionID, err)
}

// TelemetryFaultReporter sends subscriber faults to the audit log and metrics
type TelemetryFaultReporter struct {
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

// NewTelemetryFaultReporter creates a fault reporter
func NewTelemetryFaultReporter(auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) SubscriberFaultReporterInterface {
	return &TelemetryFaultReporter{
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (r *TelemetryFaultReporter) ReportFault(ctx context.Context, observer string, event TransactionEvent, transactionID uuid.UUID, err error) {
	r.metrics.IncrementCounter("event_bus.subscriber_fault", map[string]string{
		"observer": observer,
		"event":    string(event),
	})

	errorMsg := ""
	if err != nil {
		errorMsg = err.Error()
	}
	r.auditLogger.LogSubscriberFault(ctx, observer, event, transactionID, errorMsg)
}
