package errors

// ErrorCode is a stable, machine-readable API error identifier
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound     ErrorCode = "ACCOUNT_001"
	AccountNotPermitted ErrorCode = "ACCOUNT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed ErrorCode = "TRANSACTION_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Categorization rule error codes (RULE_*)
const (
	RuleNotFound         ErrorCode = "RULE_001"
	RuleInvalidType      ErrorCode = "RULE_002"
	RuleInvalidPattern   ErrorCode = "RULE_003"
	RuleInvalidRange     ErrorCode = "RULE_004"
	RuleReloadInProgress ErrorCode = "RULE_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound         ErrorCode = "BUDGET_001"
	BudgetInvalidAmount    ErrorCode = "BUDGET_002"
	BudgetInvalidPeriod    ErrorCode = "BUDGET_003"
	BudgetInvalidThreshold ErrorCode = "BUDGET_004"
)

// Alert error codes (ALERT_*)
const (
	AlertNotFound ErrorCode = "ALERT_001"
)

// Report error codes (REPORT_*)
const (
	ReportUnknownType  ErrorCode = "REPORT_001"
	ReportInvalidRange ErrorCode = "REPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	AccountNotFound:     "Account not found",
	AccountNotPermitted: "Account does not belong to the caller",

	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount must be non-zero",
	TransactionValidationFailed: "Transaction validation failed",

	CategoryNotFound: "Category not found",

	RuleNotFound:         "Categorization rule not found",
	RuleInvalidType:      "Rule type must be keyword, merchant or amount_range",
	RuleInvalidPattern:   "Rule pattern is required",
	RuleInvalidRange:     "Amount range requires 0 <= min <= max",
	RuleReloadInProgress: "A rule reload is already running",

	BudgetNotFound:         "Budget not found",
	BudgetInvalidAmount:    "Budget amount must be positive",
	BudgetInvalidPeriod:    "Budget period must be weekly, monthly, quarterly or yearly",
	BudgetInvalidThreshold: "Alert threshold must be greater than 0 and at most 1",

	AlertNotFound: "Budget alert not found",

	ReportUnknownType:  "Unknown report type",
	ReportInvalidRange: "Report start date must be before end date",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
