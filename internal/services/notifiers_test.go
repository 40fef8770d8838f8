package services_test

import (
	"context"
	"errors"
	"testing"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories/repository_mocks"
	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NotifiersTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	alertRepo   *repository_mocks.MockBudgetAlertRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	alert       *models.BudgetAlert
}

func TestNotifiersSuite(t *testing.T) {
	suite.Run(t, new(NotifiersTestSuite))
}

func (s *NotifiersTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.alertRepo = repository_mocks.NewMockBudgetAlertRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.alert = &models.BudgetAlert{
		ID:              uuid.New(),
		BudgetID:        uuid.New(),
		UserID:          uuid.New(),
		AlertType:       models.AlertTypeWarning90,
		Message:         gofakeit.Sentence(6),
		CurrentSpending: decimal.NewFromInt(450),
		BudgetLimit:     decimal.NewFromInt(500),
	}
}

func (s *NotifiersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotifiersTestSuite) TestAlertStore_PersistsAlert() {
	s.alertRepo.EXPECT().Create(s.alert).Return(nil).Times(1)

	s.NoError(services.NewAlertStore(s.alertRepo).SendAlert(s.ctx, s.alert))
}

func (s *NotifiersTestSuite) TestAlertStore_WrapsRepositoryError() {
	s.alertRepo.EXPECT().Create(s.alert).Return(errors.New("disk full"))

	err := services.NewAlertStore(s.alertRepo).SendAlert(s.ctx, s.alert)

	s.Error(err)
	s.Contains(err.Error(), "failed to store alert")
}

func (s *NotifiersTestSuite) TestAlertStore_NilAlert() {
	s.ErrorIs(services.NewAlertStore(s.alertRepo).SendAlert(s.ctx, nil), services.ErrNilAlert)
}

func (s *NotifiersTestSuite) TestLogNotifier_WritesAuditEvent() {
	s.auditLogger.EXPECT().LogAlertDispatched(s.ctx, s.alert).Times(1)

	s.NoError(services.NewLogNotifier(s.auditLogger).SendAlert(s.ctx, s.alert))
}

func (s *NotifiersTestSuite) TestMultiNotifier_DeliversToEverySink() {
	first := service_mocks.NewMockNotificationSinkInterface(s.ctrl)
	second := service_mocks.NewMockNotificationSinkInterface(s.ctrl)
	notifier := services.NewMultiNotifier(s.metrics, s.auditLogger).Add("store", first).Add("log", second).Add("none", nil)

	gomock.InOrder(
		first.EXPECT().SendAlert(s.ctx, s.alert).Return(nil),
		second.EXPECT().SendAlert(s.ctx, s.alert).Return(nil),
	)
	s.metrics.EXPECT().IncrementCounter("budget_alert.delivery", map[string]string{"sink": "store", "status": "delivered"})
	s.metrics.EXPECT().IncrementCounter("budget_alert.delivery", map[string]string{"sink": "log", "status": "delivered"})

	s.Equal(2, notifier.Len())
	s.NoError(notifier.SendAlert(s.ctx, s.alert))
}

func (s *NotifiersTestSuite) TestMultiNotifier_FailureDoesNotStopOtherSinks() {
	first := service_mocks.NewMockNotificationSinkInterface(s.ctrl)
	second := service_mocks.NewMockNotificationSinkInterface(s.ctrl)
	notifier := services.NewMultiNotifier(s.metrics, s.auditLogger).Add("amqp", first).Add("log", second)

	brokerDown := errors.New("broker down")
	first.EXPECT().SendAlert(s.ctx, s.alert).Return(brokerDown)
	second.EXPECT().SendAlert(s.ctx, s.alert).Return(nil).Times(1)
	s.metrics.EXPECT().IncrementCounter("budget_alert.delivery", map[string]string{"sink": "amqp", "status": "failed"})
	s.metrics.EXPECT().IncrementCounter("budget_alert.delivery", map[string]string{"sink": "log", "status": "delivered"})
	s.auditLogger.EXPECT().LogAlertDeliveryFailed(s.ctx, s.alert.ID, "amqp: broker down").Times(1)

	err := notifier.SendAlert(s.ctx, s.alert)

	s.Error(err)
	s.ErrorIs(err, brokerDown)
}
