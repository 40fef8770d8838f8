package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"
	"budget-watch/internal/repositories"
	"budget-watch/internal/repositories/repository_mocks"
	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	categorization  *service_mocks.MockCategorizationServiceInterface
	events          *service_mocks.MockTransactionSubjectInterface
	auditLogger     *service_mocks.MockAuditLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.TransactionServiceInterface
	now             time.Time
	userID          uuid.UUID
	account         *models.Account
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.categorization = service_mocks.NewMockCategorizationServiceInterface(s.ctrl)
	s.events = service_mocks.NewMockTransactionSubjectInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.service = services.NewTransactionService(
		s.transactionRepo,
		s.accountRepo,
		s.categoryRepo,
		s.categorization,
		s.events,
		s.auditLogger,
		s.metrics,
	)
	s.now = time.Date(2026, time.April, 2, 15, 4, 5, 0, time.UTC)
	services.SetTransactionServiceClock(s.service, func() time.Time { return s.now })

	s.userID = uuid.New()
	s.account = &models.Account{
		ID:          uuid.New(),
		UserID:      s.userID,
		Name:        gofakeit.Word(),
		AccountType: models.AccountTypeChecking,
	}
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) storedTransaction() *models.Transaction {
	return &models.Transaction{
		ID:              uuid.New(),
		AccountID:       s.account.ID,
		Amount:          decimal.NewFromFloat(-18.25),
		Description:     gofakeit.Sentence(3),
		TransactionDate: s.now.Add(-24 * time.Hour),
		Confidence:      models.ConfidenceLow,
		Account:         *s.account,
	}
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_CategorizesStoresThenNotifies() {
	categoryID := uuid.New()
	req := &dto.CreateTransactionRequest{
		AccountID:    s.account.ID.String(),
		Amount:       "-42.499",
		Description:  "  Whole Foods  ",
		MerchantName: "WHOLE FOODS",
	}

	s.accountRepo.EXPECT().GetByIDForUser(s.account.ID, s.userID).Return(s.account, nil)
	gomock.InOrder(
		s.categorization.EXPECT().Categorize(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) *models.CategoryResult {
			s.Equal(s.userID, tx.OwnerID())
			return models.NewMatchResult(categoryID, models.ConfidenceHigh, models.CategorizationMethodMerchant)
		}),
		s.transactionRepo.EXPECT().Create(gomock.Any()).Return(nil),
		s.metrics.EXPECT().IncrementCounter("transaction.recorded", map[string]string{"method": models.CategorizationMethodMerchant}),
		s.events.EXPECT().NotifyCreated(s.ctx, gomock.Any()),
	)

	transaction, err := s.service.RecordTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.True(transaction.Amount.Equal(decimal.RequireFromString("-42.50")))
	s.Equal("Whole Foods", transaction.Description)
	s.Equal(categoryID, *transaction.CategoryID)
	s.Equal(models.ConfidenceHigh, transaction.Confidence)
	s.Equal(s.now, transaction.TransactionDate)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_NoMatchStoresManualRequired() {
	req := &dto.CreateTransactionRequest{AccountID: s.account.ID.String(), Amount: "-5", Description: "??"}

	s.accountRepo.EXPECT().GetByIDForUser(s.account.ID, s.userID).Return(s.account, nil)
	s.categorization.EXPECT().Categorize(s.ctx, gomock.Any()).Return(models.NewManualResult())
	s.transactionRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("transaction.recorded", map[string]string{"method": models.CategorizationMethodManualRequired})
	s.events.EXPECT().NotifyCreated(s.ctx, gomock.Any())

	transaction, err := s.service.RecordTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Nil(transaction.CategoryID)
	s.Equal(models.ConfidenceLow, transaction.Confidence)
	s.Equal(models.CategorizationMethodManualRequired, transaction.CategorizationMethod)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_OtherUsersAccount() {
	req := &dto.CreateTransactionRequest{AccountID: s.account.ID.String(), Amount: "-5", Description: "x"}
	s.accountRepo.EXPECT().GetByIDForUser(s.account.ID, s.userID).Return(nil, repositories.ErrAccountNotFound)
	s.transactionRepo.EXPECT().Create(gomock.Any()).Times(0)

	_, err := s.service.RecordTransaction(s.ctx, s.userID, req)

	s.ErrorIs(err, services.ErrAccountNotFound)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_InvalidAmount() {
	for _, amount := range []string{"abc", "0", "0.001"} {
		s.Run(amount, func() {
			req := &dto.CreateTransactionRequest{AccountID: s.account.ID.String(), Amount: amount, Description: "x"}
			s.accountRepo.EXPECT().GetByIDForUser(s.account.ID, s.userID).Return(s.account, nil)

			_, err := s.service.RecordTransaction(s.ctx, s.userID, req)

			s.ErrorIs(err, services.ErrInvalidAmount)
		})
	}
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_StoreFailureDoesNotNotify() {
	req := &dto.CreateTransactionRequest{AccountID: s.account.ID.String(), Amount: "-5", Description: "x"}
	s.accountRepo.EXPECT().GetByIDForUser(s.account.ID, s.userID).Return(s.account, nil)
	s.categorization.EXPECT().Categorize(s.ctx, gomock.Any()).Return(models.NewManualResult())
	s.transactionRepo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))
	s.events.EXPECT().NotifyCreated(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.RecordTransaction(s.ctx, s.userID, req)

	s.ErrorContains(err, "failed to record transaction")
}

func (s *TransactionServiceTestSuite) TestGetTransaction_OtherUserIsNotFound() {
	transaction := s.storedTransaction()
	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)

	_, err := s.service.GetTransaction(s.ctx, uuid.New(), transaction.ID)

	s.ErrorIs(err, services.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactions_RequiresUser() {
	_, _, err := s.service.ListTransactions(s.ctx, models.TransactionFilters{})

	s.ErrorIs(err, services.ErrAccountNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactions_ChecksAccountOwnership() {
	filters := models.TransactionFilters{UserID: s.userID, AccountID: s.account.ID, Limit: 10}
	s.accountRepo.EXPECT().GetByIDForUser(s.account.ID, s.userID).Return(s.account, nil)
	s.transactionRepo.EXPECT().GetWithFilters(filters).Return([]models.Transaction{*s.storedTransaction()}, int64(1), nil)

	transactions, total, err := s.service.ListTransactions(s.ctx, filters)

	s.NoError(err)
	s.Len(transactions, 1)
	s.Equal(int64(1), total)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_RecategorizesUnverified() {
	transaction := s.storedTransaction()
	categoryID := uuid.New()
	description := "Shell gas"

	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)
	s.categorization.EXPECT().Categorize(s.ctx, transaction).
		Return(models.NewMatchResult(categoryID, models.ConfidenceHigh, models.CategorizationMethodKeyword))
	s.transactionRepo.EXPECT().Update(transaction).Return(nil)
	s.metrics.EXPECT().IncrementCounter("transaction.updated", nil)
	s.events.EXPECT().NotifyUpdated(s.ctx, transaction).Times(1)

	updated, err := s.service.UpdateTransaction(s.ctx, s.userID, transaction.ID, &dto.UpdateTransactionRequest{Description: &description})

	s.Require().NoError(err)
	s.Equal(description, updated.Description)
	s.Equal(categoryID, *updated.CategoryID)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_KeepsUserVerifiedCategory() {
	transaction := s.storedTransaction()
	categoryID := uuid.New()
	transaction.AssignManualCategory(categoryID)
	amount := "-99.99"

	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)
	s.categorization.EXPECT().Categorize(gomock.Any(), gomock.Any()).Times(0)
	s.transactionRepo.EXPECT().Update(transaction).Return(nil)
	s.metrics.EXPECT().IncrementCounter("transaction.updated", nil)
	s.events.EXPECT().NotifyUpdated(s.ctx, transaction)

	updated, err := s.service.UpdateTransaction(s.ctx, s.userID, transaction.ID, &dto.UpdateTransactionRequest{Amount: &amount})

	s.Require().NoError(err)
	s.Equal(categoryID, *updated.CategoryID)
	s.Equal(models.ConfidenceUserVerified, updated.Confidence)
}

func (s *TransactionServiceTestSuite) TestOverrideCategory() {
	transaction := s.storedTransaction()
	categoryID := uuid.New()

	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(&models.Category{ID: categoryID}, nil)
	s.transactionRepo.EXPECT().UpdateCategorization(transaction).Return(nil)
	s.auditLogger.EXPECT().LogManualCategoryOverride(s.ctx, transaction.ID, s.userID, nil, categoryID).Times(1)
	s.metrics.EXPECT().IncrementCounter("transaction.category_override", nil)
	s.events.EXPECT().NotifyUpdated(s.ctx, transaction).Times(1)

	updated, err := s.service.OverrideCategory(s.ctx, s.userID, transaction.ID, categoryID)

	s.Require().NoError(err)
	s.Equal(categoryID, *updated.CategoryID)
	s.Equal(models.ConfidenceUserVerified, updated.Confidence)
	s.Equal(models.CategorizationMethodManual, updated.CategorizationMethod)
}

func (s *TransactionServiceTestSuite) TestOverrideCategory_SameVerifiedCategory() {
	transaction := s.storedTransaction()
	categoryID := uuid.New()
	transaction.AssignManualCategory(categoryID)

	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(&models.Category{ID: categoryID}, nil)
	s.transactionRepo.EXPECT().UpdateCategorization(gomock.Any()).Times(0)

	_, err := s.service.OverrideCategory(s.ctx, s.userID, transaction.ID, categoryID)

	s.ErrorIs(err, services.ErrCategoryNotChanged)
}

func (s *TransactionServiceTestSuite) TestOverrideCategory_UnknownCategory() {
	transaction := s.storedTransaction()
	categoryID := uuid.New()

	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.OverrideCategory(s.ctx, s.userID, transaction.ID, categoryID)

	s.ErrorIs(err, services.ErrCategoryNotFound)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_NotifiesAfterDelete() {
	transaction := s.storedTransaction()

	s.transactionRepo.EXPECT().GetByID(transaction.ID).Return(transaction, nil)
	gomock.InOrder(
		s.transactionRepo.EXPECT().Delete(transaction.ID).Return(nil),
		s.metrics.EXPECT().IncrementCounter("transaction.deleted", nil),
		s.events.EXPECT().NotifyDeleted(s.ctx, transaction),
	)

	s.NoError(s.service.DeleteTransaction(s.ctx, s.userID, transaction.ID))
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_Missing() {
	id := uuid.New()
	s.transactionRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound)

	s.ErrorIs(s.service.DeleteTransaction(s.ctx, s.userID, id), services.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestPreviewCategorization_PersistsNothing() {
	categoryID := uuid.New()
	req := &dto.CategorizePreviewRequest{Amount: "-12", Description: "Uber trip"}

	s.categorization.EXPECT().Categorize(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) *models.CategoryResult {
		s.Equal(s.userID, tx.OwnerID())
		return models.NewMatchResult(categoryID, models.ConfidenceHigh, models.CategorizationMethodKeyword)
	})
	s.categorization.EXPECT().RulesVersion().Return(uint64(7))
	s.transactionRepo.EXPECT().Create(gomock.Any()).Times(0)
	s.events.EXPECT().NotifyCreated(gomock.Any(), gomock.Any()).Times(0)

	preview, err := s.service.PreviewCategorization(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Equal(categoryID, *preview.Result.CategoryID)
	s.Equal(uint64(7), preview.RulesVersion)
}
