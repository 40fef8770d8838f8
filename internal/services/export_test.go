package services

import "time"

// NewCircuitBreakerWithClock exposes the clock-injected constructor to external tests
func NewCircuitBreakerWithClock(config CircuitBreakerConfig, now func() time.Time) *CircuitBreaker {
	return newCircuitBreaker(config, now)
}

// SetTransactionServiceClock replaces the clock of a transaction service
func SetTransactionServiceClock(s TransactionServiceInterface, now func() time.Time) {
	s.(*TransactionService).now = now
}

// SetReportServiceClock replaces the clock of a report service
func SetReportServiceClock(s ReportServiceInterface, now func() time.Time) {
	s.(*ReportService).now = now
}

// SeedAnalyticsCache stores a value directly in an analytics cache
func SeedAnalyticsCache(c *AnalyticsCache, key string, value int) {
	c.set(key, &value)
}

// BudgetLockCount reports how many per-budget locks an alert observer still holds
func BudgetLockCount(o *BudgetAlertObserver) int {
	return o.locks.size()
}
