package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	categorizationTotal    *prometheus.CounterVec
	categorizationDuration prometheus.Histogram
	aiOutcomes             *prometheus.CounterVec
	classifierCache        *prometheus.CounterVec
	classifierThrottled    prometheus.Counter
	classifierDuration     prometheus.Histogram
	circuitBreakerState    *prometheus.GaugeVec
	rulesLoaded            prometheus.Gauge
	rulesReloadDuration    prometheus.Histogram
	rulesCreated           *prometheus.CounterVec
	backfillBatches        prometheus.Counter
	backfillCategorized    prometheus.Gauge
	backfillDuration       prometheus.Histogram
	transactionsTotal      *prometheus.CounterVec
	budgetChanges          *prometheus.CounterVec
	alertsTotal            *prometheus.CounterVec
	alertDeliveries        *prometheus.CounterVec
	subscriberFaults       *prometheus.CounterVec
	analyticsCacheLookups  *prometheus.CounterVec
	analyticsInvalidations prometheus.Counter
	analyticsInvalidated   prometheus.Gauge
	reportsGenerated       *prometheus.CounterVec
	rateLimitedRequests    prometheus.Counter
}

// NewPrometheusMetrics registers every collector with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		categorizationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorization_total",
				Help: "Total number of categorizations by chain stage, method and confidence",
			},
			[]string{"stage", "method", "confidence"},
		),
		categorizationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "categorization_duration_milliseconds",
				Help:    "Categorization chain duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		aiOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorization_ai_outcomes_total",
				Help: "AI strategy outcomes (matched, unavailable, error, low_confidence, unknown_category)",
			},
			[]string{"outcome"},
		),
		classifierCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifier_cache_lookups_total",
				Help: "Classifier prediction cache lookups",
			},
			[]string{"result"},
		),
		classifierThrottled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "classifier_throttled_total",
				Help: "Classifier calls refused by the rate limiter",
			},
		),
		classifierDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classifier_request_duration_seconds",
				Help:    "Classifier request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		rulesLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "categorization_rules_loaded",
				Help: "Number of active rules in the published rule tables",
			},
		),
		rulesReloadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "categorization_rules_reload_duration_milliseconds",
				Help:    "Rule reload duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		rulesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorization_rules_created_total",
				Help: "Total number of categorization rules created",
			},
			[]string{"rule_type"},
		),
		backfillBatches: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "categorization_backfill_batches_total",
				Help: "Total number of backfill batches run",
			},
		),
		backfillCategorized: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "categorization_backfill_last_categorized",
				Help: "Transactions categorized by the most recent backfill batch",
			},
		),
		backfillDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "categorization_backfill_duration_milliseconds",
				Help:    "Backfill batch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		transactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_total",
				Help: "Total number of transaction writes by operation",
			},
			[]string{"operation", "method"},
		),
		budgetChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_changes_total",
				Help: "Total number of budget changes by action",
			},
			[]string{"action"},
		),
		alertsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alerts_total",
				Help: "Budget alerts raised or suppressed as duplicates",
			},
			[]string{"alert_type", "status"},
		),
		alertDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alert_deliveries_total",
				Help: "Budget alert deliveries per sink",
			},
			[]string{"sink", "status"},
		),
		subscriberFaults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_bus_subscriber_faults_total",
				Help: "Observer failures isolated by the transaction event bus",
			},
			[]string{"observer", "event"},
		),
		analyticsCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_cache_lookups_total",
				Help: "Analytics cache lookups",
			},
			[]string{"result"},
		),
		analyticsInvalidations: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_cache_invalidations_total",
				Help: "Analytics cache invalidation requests",
			},
		),
		analyticsInvalidated: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "analytics_cache_last_invalidated_entries",
				Help: "Entries removed by the most recent analytics cache invalidation",
			},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of reports generated by type",
			},
			[]string{"type"},
		),
		rateLimitedRequests: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limited_requests_total",
				Help: "Requests rejected by the per-IP rate limiter",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "categorization.completed":
		m.categorizationTotal.WithLabelValues(tags["stage"], tags["method"], tags["confidence"]).Inc()
	case "categorization.ai":
		m.aiOutcomes.WithLabelValues(tags["outcome"]).Inc()
	case "categorization.rule_created":
		m.rulesCreated.WithLabelValues(tags["rule_type"]).Inc()
	case "categorization.backfill.batches":
		m.backfillBatches.Inc()
	case "classifier.cache":
		m.classifierCache.WithLabelValues(tags["result"]).Inc()
	case "classifier.throttled":
		m.classifierThrottled.Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "transaction.recorded":
		m.transactionsTotal.WithLabelValues("recorded", tags["method"]).Inc()
	case "transaction.updated":
		m.transactionsTotal.WithLabelValues("updated", "").Inc()
	case "transaction.category_override":
		m.transactionsTotal.WithLabelValues("category_override", "manual").Inc()
	case "transaction.deleted":
		m.transactionsTotal.WithLabelValues("deleted", "").Inc()
	case "budget.changed":
		m.budgetChanges.WithLabelValues(tags["action"]).Inc()
	case "budget_alert.raised":
		m.alertsTotal.WithLabelValues(tags["alert_type"], "raised").Inc()
	case "budget_alert.suppressed":
		m.alertsTotal.WithLabelValues(tags["alert_type"], "suppressed").Inc()
	case "budget_alert.read":
		m.alertsTotal.WithLabelValues("", "read").Inc()
	case "budget_alert.delivery":
		m.alertDeliveries.WithLabelValues(tags["sink"], tags["status"]).Inc()
	case "event_bus.subscriber_fault":
		m.subscriberFaults.WithLabelValues(tags["observer"], tags["event"]).Inc()
	case "analytics_cache.lookup":
		m.analyticsCacheLookups.WithLabelValues(tags["result"]).Inc()
	case "analytics_cache.invalidated":
		m.analyticsInvalidations.Inc()
	case "report.generated":
		m.reportsGenerated.WithLabelValues(tags["type"]).Inc()
	case "http.rate_limited":
		m.rateLimitedRequests.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "categorization.duration":
		m.categorizationDuration.Observe(float64(duration.Milliseconds()))
	case "categorization.rules_reload":
		m.rulesReloadDuration.Observe(float64(duration.Milliseconds()))
	case "categorization.backfill":
		m.backfillDuration.Observe(float64(duration.Milliseconds()))
	case "classifier.request":
		m.classifierDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "categorization.rules_loaded":
		m.rulesLoaded.Set(value)
	case "categorization.backfill.categorized":
		m.backfillCategorized.Set(value)
	case "analytics_cache.invalidated_entries":
		m.analyticsInvalidated.Set(value)
	}
}
