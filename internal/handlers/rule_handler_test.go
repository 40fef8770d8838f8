package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"budget-watch/internal/dto"
	"budget-watch/internal/models"
	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RuleHandlerTestSuite struct {
	suite.Suite
	echo                  *echo.Echo
	ctrl                  *gomock.Controller
	mockCategorizationSvc *service_mocks.MockCategorizationServiceInterface
	mockBackfill          *service_mocks.MockCategorizationBackfillWorkerInterface
	handler               *RuleHandler
	userID                uuid.UUID
}

func TestRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}

func (s *RuleHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockCategorizationSvc = service_mocks.NewMockCategorizationServiceInterface(s.ctrl)
	s.mockBackfill = service_mocks.NewMockCategorizationBackfillWorkerInterface(s.ctrl)
	s.handler = NewRuleHandler(s.mockCategorizationSvc, s.mockBackfill)
	s.userID = uuid.New()
}

func (s *RuleHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RuleHandlerTestSuite) TestCreateRule_Keyword() {
	categoryID := uuid.New()
	pattern := gofakeit.Word()
	body := fmt.Sprintf(`{"ruleName":"coffee","ruleType":"keyword","pattern":%q,"categoryId":%q,"priority":5}`, pattern, categoryID)

	s.mockCategorizationSvc.EXPECT().
		CreateRule(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.CreateRuleRequest) (*models.CategorizationRule, error) {
			s.Equal(pattern, req.Pattern)
			s.Equal(5, req.Priority)
			return &models.CategorizationRule{
				ID:         uuid.New(),
				UserID:     s.userID,
				RuleType:   models.RuleTypeKeyword,
				Pattern:    pattern,
				CategoryID: categoryID,
				Priority:   5,
				IsActive:   true,
			}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/rules", body, s.userID)

	s.Require().NoError(s.handler.CreateRule(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *RuleHandlerTestSuite) TestCreateRule_ValidationErrors() {
	categoryID := uuid.New()
	testCases := []struct {
		name string
		body string
	}{
		{"unknown type", fmt.Sprintf(`{"ruleType":"regex","pattern":"x","categoryId":%q}`, categoryID)},
		{"negative bound", fmt.Sprintf(`{"ruleType":"amount_range","minAmount":"-1","maxAmount":"10","categoryId":%q}`, categoryID)},
		{"priority too high", fmt.Sprintf(`{"ruleType":"keyword","pattern":"x","categoryId":%q,"priority":5000}`, categoryID)},
		{"missing category", `{"ruleType":"keyword","pattern":"x"}`},
	}

	s.mockCategorizationSvc.EXPECT().CreateRule(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, _ := newRequestContext(s.echo, http.MethodPost, "/api/v1/rules", tc.body, s.userID)
			s.Error(s.handler.CreateRule(c))
		})
	}
}

func (s *RuleHandlerTestSuite) TestCreateRule_ServiceRejections() {
	categoryID := uuid.New()
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing pattern", models.ErrRulePatternRequired, http.StatusUnprocessableEntity, "RULE_003"},
		{"inverted range", models.ErrInvalidAmountRange, http.StatusUnprocessableEntity, "RULE_004"},
		{"unknown category", services.ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCategorizationSvc.EXPECT().
				CreateRule(gomock.Any(), s.userID, gomock.Any()).
				Return(nil, fmt.Errorf("failed to create rule: %w", tc.err))

			body := fmt.Sprintf(`{"ruleType":"merchant","categoryId":%q}`, categoryID)
			c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/rules", body, s.userID)

			s.Require().NoError(s.handler.CreateRule(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, responseErrorCode(s.T(), rec))
		})
	}
}

func (s *RuleHandlerTestSuite) TestListRules_IncludesRulesVersion() {
	rules := []models.CategorizationRule{
		{ID: uuid.New(), UserID: s.userID, RuleType: models.RuleTypeMerchant, Pattern: gofakeit.Company(), IsActive: true},
	}
	s.mockCategorizationSvc.EXPECT().ListRules(gomock.Any(), s.userID).Return(rules, nil)
	s.mockCategorizationSvc.EXPECT().RulesVersion().Return(uint64(7))

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/rules", "", s.userID)

	s.Require().NoError(s.handler.ListRules(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []models.CategorizationRule `json:"data"`
		Meta struct {
			RulesVersion uint64 `json:"rulesVersion"`
		} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data, 1)
	s.Equal(uint64(7), response.Meta.RulesVersion)
}

func (s *RuleHandlerTestSuite) TestDeactivateRule() {
	ruleID := uuid.New()
	s.mockCategorizationSvc.EXPECT().DeactivateRule(gomock.Any(), s.userID, ruleID).Return(nil)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/", "", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(ruleID.String())

	s.Require().NoError(s.handler.DeactivateRule(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *RuleHandlerTestSuite) TestDeactivateRule_NotFound() {
	ruleID := uuid.New()
	s.mockCategorizationSvc.EXPECT().DeactivateRule(gomock.Any(), s.userID, ruleID).Return(services.ErrRuleNotFound)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/", "", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(ruleID.String())

	s.Require().NoError(s.handler.DeactivateRule(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("RULE_001", responseErrorCode(s.T(), rec))
}

func (s *RuleHandlerTestSuite) TestReloadRules() {
	s.mockCategorizationSvc.EXPECT().
		ReloadRules(gomock.Any()).
		Return(&dto.RulesReloadResponse{Version: 4, RuleCount: 12, DurationMs: 3}, nil)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/rules/reload", "", s.userID)

	s.Require().NoError(s.handler.ReloadRules(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.RulesReloadResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(uint64(4), response.Version)
	s.Equal(12, response.RuleCount)
}

func (s *RuleHandlerTestSuite) TestRunBackfill() {
	s.mockBackfill.EXPECT().
		ProcessBatch(gomock.Any()).
		Return(&dto.BackfillResult{Processed: 3, Categorized: 2, StillManual: 1}, nil)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/admin/backfill", "", s.userID)

	s.Require().NoError(s.handler.RunBackfill(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.BackfillResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Categorized)
}

func (s *RuleHandlerTestSuite) TestRunBackfill_AlreadyRunning() {
	s.mockBackfill.EXPECT().ProcessBatch(gomock.Any()).Return(nil, services.ErrBackfillAlreadyRunning)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/admin/backfill", "", s.userID)

	s.Require().NoError(s.handler.RunBackfill(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("RULE_005", responseErrorCode(s.T(), rec))
}

func (s *RuleHandlerTestSuite) TestRunBackfill_Disabled() {
	handler := NewRuleHandler(s.mockCategorizationSvc, nil)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/admin/backfill", "", s.userID)

	s.Require().NoError(handler.RunBackfill(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SYSTEM_003", responseErrorCode(s.T(), rec))
}
