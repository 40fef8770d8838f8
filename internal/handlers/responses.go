package handlers

import (
	stderrors "errors"
	"net/http"

	"budget-watch/internal/errors"
	"budget-watch/internal/models"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Authentication errors: SendError(c, errors.AuthMissingToken)
//    - Authorization errors: SendError(c, errors.AuthInsufficientPermission)
//    - Not found errors: SendError(c, errors.BudgetNotFound)
//
// 2. SendSystemError - For system/internal errors (500 responses)
//
// 3. SendServiceError - For errors returned by the service layer. Known sentinels
//    map to their error code, everything else becomes a system error.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// serviceErrorCodes maps service and model sentinels to API error codes.
// Order matters: the first match wins.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrTransactionNotFound, errors.TransactionNotFound},
	{services.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrCategoryNotFound, errors.CategoryNotFound},
	{services.ErrRuleNotFound, errors.RuleNotFound},
	{services.ErrBudgetNotFound, errors.BudgetNotFound},
	{services.ErrAlertNotFound, errors.AlertNotFound},
	{services.ErrInvalidAmount, errors.TransactionInvalidAmount},
	{services.ErrCategoryNotChanged, errors.ValidationGeneral},
	{models.ErrDescriptionTooLong, errors.TransactionValidationFailed},
	{models.ErrInvalidRuleType, errors.RuleInvalidType},
	{models.ErrRulePatternRequired, errors.RuleInvalidPattern},
	{models.ErrInvalidAmountRange, errors.RuleInvalidRange},
	{services.ErrInvalidRuleAmount, errors.RuleInvalidRange},
	{services.ErrBudgetExists, errors.ValidationGeneral},
	{services.ErrInvalidBudgetAmount, errors.BudgetInvalidAmount},
	{models.ErrInvalidBudgetAmount, errors.BudgetInvalidAmount},
	{models.ErrInvalidBudgetPeriod, errors.BudgetInvalidPeriod},
	{services.ErrInvalidThreshold, errors.BudgetInvalidThreshold},
	{models.ErrInvalidAlertThreshold, errors.BudgetInvalidThreshold},
	{services.ErrUnknownReportType, errors.ReportUnknownType},
	{services.ErrInvalidDateRange, errors.ValidationInvalidDate},
	{services.ErrBackfillAlreadyRunning, errors.RuleReloadInProgress},
}

// SendServiceError sends the response for an error returned by a service
func SendServiceError(c echo.Context, err error) error {
	for _, mapping := range serviceErrorCodes {
		if stderrors.Is(err, mapping.err) {
			return SendError(c, mapping.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
