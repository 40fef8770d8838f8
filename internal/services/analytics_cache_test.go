package services_test

import (
	"testing"
	"time"

	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsCacheTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	cache   *services.AnalyticsCache
}

func TestAnalyticsCacheSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsCacheTestSuite))
}

func (s *AnalyticsCacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.cache = services.NewAnalyticsCache(100, time.Minute, s.metrics)
}

func (s *AnalyticsCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsCacheTestSuite) TestInvalidate_DropsKeyAndScopedEntries() {
	services.SeedAnalyticsCache(s.cache, "analytics:category:abc:u1:1:2", 1)
	services.SeedAnalyticsCache(s.cache, "analytics:category:abc:u2:1:2", 2)
	services.SeedAnalyticsCache(s.cache, "analytics:category:abcd:u1:1:2", 3)
	services.SeedAnalyticsCache(s.cache, "analytics:dashboard:u1", 4)

	s.metrics.EXPECT().IncrementCounter("analytics_cache.invalidated", nil).Times(1)
	s.metrics.EXPECT().RecordGauge("analytics_cache.invalidated_entries", float64(2), nil).Times(1)

	s.cache.Invalidate("analytics:category:abc")

	s.Equal(2, s.cache.Size())
}

func (s *AnalyticsCacheTestSuite) TestInvalidate_DashboardDropsEveryUser() {
	services.SeedAnalyticsCache(s.cache, "analytics:dashboard:u1", 1)
	services.SeedAnalyticsCache(s.cache, "analytics:dashboard:u2", 2)

	s.metrics.EXPECT().IncrementCounter("analytics_cache.invalidated", nil)
	s.metrics.EXPECT().RecordGauge("analytics_cache.invalidated_entries", float64(2), nil)

	s.cache.Invalidate(services.AnalyticsDashboardKey)

	s.Equal(0, s.cache.Size())
}

func (s *AnalyticsCacheTestSuite) TestCleanExpired() {
	cache := services.NewAnalyticsCache(10, time.Millisecond, s.metrics)
	services.SeedAnalyticsCache(cache, "analytics:dashboard:u1", 1)

	time.Sleep(5 * time.Millisecond)

	s.Equal(1, cache.CleanExpired())
	s.Equal(0, cache.Size())
}
