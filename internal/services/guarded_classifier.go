package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"budget-watch/internal/cache"
	"budget-watch/internal/classifier"
	"budget-watch/internal/config"
	"budget-watch/internal/models"

	"golang.org/x/time/rate"
)

const classifierServiceName = "classifier"

// GuardedClassifierConfig bounds how the external classifier is called
type GuardedClassifierConfig struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	CacheSize         int
	CacheTTL          time.Duration
}

// GuardedClassifierConfigFromSettings maps the categorization settings onto the guard
func GuardedClassifierConfigFromSettings(cfg config.CategorizationConfig) GuardedClassifierConfig {
	return GuardedClassifierConfig{
		Timeout:           cfg.AITimeout,
		RequestsPerSecond: cfg.AIRequestsPerSecond,
		Burst:             cfg.AIBurst,
		CacheSize:         1000,
		CacheTTL:          cfg.AICacheTTL,
	}
}

// GuardedClassifier wraps a classifier with a prediction cache, a rate limiter,
// a per-call timeout and a circuit breaker. Refusals caused by the limiter or the
// breaker wrap ErrClassifierUnavailable.
type GuardedClassifier struct {
	next        classifier.ClassifierInterface
	breaker     CircuitBreakerInterface
	limiter     *rate.Limiter
	timeout     time.Duration
	predictions cache.Cache[classifier.Prediction]
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
}

// NewGuardedClassifier creates a guarded classifier around next
func NewGuardedClassifier(
	next classifier.ClassifierInterface,
	breaker CircuitBreakerInterface,
	cfg GuardedClassifierConfig,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
) classifier.ClassifierInterface {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 1000
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &GuardedClassifier{
		next:        next,
		breaker:     breaker,
		limiter:     rate.NewLimiter(limit, burst),
		timeout:     timeout,
		predictions: cache.NewLRUCache[classifier.Prediction](cacheSize, cfg.CacheTTL),
		metrics:     metrics,
		auditLogger: auditLogger,
	}
}

// Classify answers from the cache when possible, otherwise calls the wrapped classifier
func (g *GuardedClassifier) Classify(ctx context.Context, req classifier.Request) (*classifier.Prediction, error) {
	key := predictionCacheKey(req)
	if cached, ok := g.predictions.Get(key); ok {
		g.metrics.IncrementCounter("classifier.cache", map[string]string{"result": "hit"})
		prediction := cached
		return &prediction, nil
	}
	g.metrics.IncrementCounter("classifier.cache", map[string]string{"result": "miss"})

	before := g.breaker.GetState()
	if g.breaker.IsOpen() {
		g.metrics.IncrementCounter("circuit_breaker.open", map[string]string{"service": classifierServiceName})
		return nil, fmt.Errorf("%w: %w", ErrClassifierUnavailable, ErrCircuitBreakerOpen)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		g.metrics.IncrementCounter("classifier.throttled", nil)
		return nil, fmt.Errorf("%w: rate limit wait: %w", ErrClassifierUnavailable, err)
	}

	start := time.Now()
	prediction, err := g.next.Classify(ctx, req)
	g.metrics.RecordProcessingTime("classifier.request", time.Since(start))

	if err != nil {
		g.breaker.RecordFailure()
		g.trackState(ctx, before)
		return nil, fmt.Errorf("failed to classify transaction: %w", err)
	}

	g.breaker.RecordSuccess()
	g.trackState(ctx, before)

	if prediction != nil {
		g.predictions.Set(key, *prediction)
	}
	return prediction, nil
}

func (g *GuardedClassifier) trackState(ctx context.Context, before models.CircuitBreakerState) {
	after := g.breaker.GetState()
	if after == before {
		return
	}

	g.metrics.RecordGauge("circuit_breaker_state", float64(after), map[string]string{"service": classifierServiceName})
	if g.auditLogger != nil {
		g.auditLogger.LogCircuitBreakerStateChange(ctx, classifierServiceName, before, after)
	}
}

func predictionCacheKey(req classifier.Request) string {
	return strings.ToLower(strings.TrimSpace(req.Description)) + "|" +
		strings.ToLower(strings.TrimSpace(req.MerchantName)) + "|" +
		strings.Join(req.Categories, ",")
}
