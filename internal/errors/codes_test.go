package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{AuthMissingToken, "Authorization token is required"},
		{ValidationGeneral, "Validation failed"},
		{BudgetInvalidThreshold, "Alert threshold must be greater than 0 and at most 1"},
		{RuleInvalidType, "Rule type must be keyword, merchant or amount_range"},
		{ReportUnknownType, "Unknown report type"},
		{SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestEveryCodeHasMessageAndIsUnique() {
	seen := make(map[ErrorCode]bool)
	for code, message := range errorMessages {
		s.NotEmpty(message, "code %s has no message", code)
		s.False(seen[code])
		seen[code] = true
		s.True(IsValidErrorCode(code))
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	for _, code := range []ErrorCode{"INVALID_001", "", "BUDGET_999"} {
		s.False(IsValidErrorCode(code), "expected %q to be invalid", code)
	}
}
