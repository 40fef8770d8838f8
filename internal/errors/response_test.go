package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(BudgetNotFound, s.traceID)

	s.Equal("BUDGET_001", response.Error.Code)
	s.Equal("Budget not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		ReportUnknownType,
		s.traceID,
		WithMessage("Unknown report type: quarterly"),
		WithDetails("supported: summary, detailed, tax"),
	)

	s.Equal("Unknown report type: quarterly", response.Error.Message)
	s.Equal([]string{"supported: summary, detailed, tax"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"period":          "must be one of weekly monthly quarterly yearly",
		"amount":          "must be greater than 0",
		"alert_threshold": "must be in (0, 1]",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"alert_threshold: must be in (0, 1]",
		"amount: must be greater than 0",
		"period: must be one of weekly monthly quarterly yearly",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"pattern: is required"}
	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalError() {
	internal := errors.New("pq: relation \"budgets\" does not exist")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "budgets")
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	internal := errors.New("connection reset")

	response, err := WrapDatabaseError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationRequiredField, http.StatusBadRequest},
		{ReportInvalidRange, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AccountNotPermitted, http.StatusForbidden},
		{BudgetNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{ReportUnknownType, http.StatusBadRequest},
		{RuleReloadInProgress, http.StatusConflict},
		{BudgetInvalidThreshold, http.StatusUnprocessableEntity},
		{RuleInvalidRange, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	client := NewErrorResponse(RuleNotFound, s.traceID)
	server := NewErrorResponse(SystemInternalError, s.traceID)

	s.True(client.IsClientError())
	s.False(client.IsServerError())
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(AlertNotFound, s.traceID)

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("ALERT_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(CategoryNotFound, s.traceID)

	s.Equal("[CATEGORY_001] Category not found (trace: "+s.traceID+")", response.String())
}
