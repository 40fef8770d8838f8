package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-watch/internal/classifier"
	"budget-watch/internal/models"
	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GuardedClassifierTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	breaker     *service_mocks.MockCircuitBreakerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	cfg         services.GuardedClassifierConfig
	req         classifier.Request
	calls       int
}

func TestGuardedClassifierSuite(t *testing.T) {
	suite.Run(t, new(GuardedClassifierTestSuite))
}

func (s *GuardedClassifierTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.cfg = services.GuardedClassifierConfig{
		Timeout:   time.Second,
		CacheSize: 10,
		CacheTTL:  time.Minute,
	}
	s.req = classifier.Request{
		Description:  "Shell station 44",
		MerchantName: "Shell",
		Amount:       decimal.NewFromInt(-50),
		Categories:   []string{models.CategoryTransportation, models.CategoryTravel},
	}
	s.calls = 0

	s.metrics.EXPECT().RecordProcessingTime("classifier.request", gomock.Any()).AnyTimes()
}

func (s *GuardedClassifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GuardedClassifierTestSuite) guard(prediction *classifier.Prediction, err error) classifier.ClassifierInterface {
	next := classifierFunc(func(context.Context, classifier.Request) (*classifier.Prediction, error) {
		s.calls++
		return prediction, err
	})
	return services.NewGuardedClassifier(next, s.breaker, s.cfg, s.metrics, s.auditLogger)
}

func (s *GuardedClassifierTestSuite) TestClassify_SuccessIsCached() {
	guarded := s.guard(&classifier.Prediction{Category: models.CategoryTransportation, Confidence: 0.9}, nil)

	s.breaker.EXPECT().GetState().Return(services.StateClosed).Times(2)
	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.breaker.EXPECT().RecordSuccess().Times(1)
	s.metrics.EXPECT().IncrementCounter("classifier.cache", map[string]string{"result": "miss"}).Times(1)
	s.metrics.EXPECT().IncrementCounter("classifier.cache", map[string]string{"result": "hit"}).Times(1)

	first, err := guarded.Classify(s.ctx, s.req)
	s.Require().NoError(err)
	second, err := guarded.Classify(s.ctx, s.req)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(1, s.calls)
}

func (s *GuardedClassifierTestSuite) TestClassify_OpenBreakerRefuses() {
	guarded := s.guard(nil, nil)

	s.breaker.EXPECT().GetState().Return(services.StateOpen)
	s.breaker.EXPECT().IsOpen().Return(true)
	s.metrics.EXPECT().IncrementCounter("classifier.cache", map[string]string{"result": "miss"})
	s.metrics.EXPECT().IncrementCounter("circuit_breaker.open", map[string]string{"service": "classifier"}).Times(1)

	prediction, err := guarded.Classify(s.ctx, s.req)

	s.Nil(prediction)
	s.ErrorIs(err, services.ErrClassifierUnavailable)
	s.ErrorIs(err, services.ErrCircuitBreakerOpen)
	s.Equal(0, s.calls)
}

func (s *GuardedClassifierTestSuite) TestClassify_FailureTripsBreakerAndLogsTransition() {
	guarded := s.guard(nil, errors.New("upstream 503"))

	gomock.InOrder(
		s.breaker.EXPECT().GetState().Return(services.StateClosed),
		s.breaker.EXPECT().IsOpen().Return(false),
		s.breaker.EXPECT().RecordFailure(),
		s.breaker.EXPECT().GetState().Return(services.StateOpen),
	)
	s.metrics.EXPECT().IncrementCounter("classifier.cache", map[string]string{"result": "miss"})
	s.metrics.EXPECT().RecordGauge("circuit_breaker_state", float64(services.StateOpen), map[string]string{"service": "classifier"}).Times(1)
	s.auditLogger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), "classifier", services.StateClosed, services.StateOpen).Times(1)

	prediction, err := guarded.Classify(s.ctx, s.req)

	s.Nil(prediction)
	s.ErrorContains(err, "upstream 503")
	s.NotErrorIs(err, services.ErrClassifierUnavailable)
}

func (s *GuardedClassifierTestSuite) TestClassify_RateLimitTimeoutIsUnavailable() {
	s.cfg.RequestsPerSecond = 0.001
	s.cfg.Burst = 1
	s.cfg.Timeout = 20 * time.Millisecond
	guarded := s.guard(&classifier.Prediction{Category: models.CategoryTravel, Confidence: 0.8}, nil)

	s.breaker.EXPECT().GetState().Return(services.StateClosed).AnyTimes()
	s.breaker.EXPECT().IsOpen().Return(false).AnyTimes()
	s.breaker.EXPECT().RecordSuccess().Times(1)
	s.metrics.EXPECT().IncrementCounter("classifier.cache", gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter("classifier.throttled", nil).Times(1)

	_, err := guarded.Classify(s.ctx, s.req)
	s.Require().NoError(err)

	other := s.req
	other.Description = "Delta flight"
	_, err = guarded.Classify(s.ctx, other)

	s.ErrorIs(err, services.ErrClassifierUnavailable)
	s.Equal(1, s.calls)
}
