package services

import (
	"time"

	"budget-watch/internal/cache"
)

// AnalyticsCache holds computed analytics read models. Keys are hierarchical,
// so invalidating "analytics:category:<id>" also drops every entry stored
// under "analytics:category:<id>:...".
type AnalyticsCache struct {
	entries *cache.LRUCache[any]
	metrics MetricsRecorderInterface
}

// NewAnalyticsCache creates an analytics cache
func NewAnalyticsCache(maxEntries int, ttl time.Duration, metrics MetricsRecorderInterface) *AnalyticsCache {
	return &AnalyticsCache{
		entries: cache.NewLRUCache[any](maxEntries, ttl),
		metrics: metrics,
	}
}

// Invalidate drops key and every key scoped beneath it
func (c *AnalyticsCache) Invalidate(key string) {
	c.entries.Delete(key)
	removed := c.entries.DeletePrefix(key + ":")
	c.metrics.IncrementCounter("analytics_cache.invalidated", nil)
	c.metrics.RecordGauge("analytics_cache.invalidated_entries", float64(removed), nil)
}

// CleanExpired lets the cache manager sweep expired entries
func (c *AnalyticsCache) CleanExpired() int {
	return c.entries.CleanExpired()
}

// Size returns the number of cached entries
func (c *AnalyticsCache) Size() int {
	return c.entries.Size()
}

func (c *AnalyticsCache) set(key string, value any) {
	c.entries.Set(key, value)
}

func (c *AnalyticsCache) get(key string) (any, bool) {
	return c.entries.Get(key)
}

// cachedOrLoad returns the cached value for key or stores the result of load
func cachedOrLoad[T any](c *AnalyticsCache, key string, load func() (*T, error)) (*T, error) {
	if value, ok := c.get(key); ok {
		if typed, ok := value.(*T); ok {
			c.metrics.IncrementCounter("analytics_cache.lookup", map[string]string{"result": "hit"})
			return typed, nil
		}
	}
	c.metrics.IncrementCounter("analytics_cache.lookup", map[string]string{"result": "miss"})

	loaded, err := load()
	if err != nil {
		return nil, err
	}
	c.set(key, loaded)
	return loaded, nil
}
