package handlers

import (
	"net/http"
	"time"

	"budget-watch/internal/errors"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db             *gorm.DB
	categorization services.CategorizationServiceInterface
	breaker        services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler. categorization and
// breaker are optional and only add detail to the response.
func NewHealthCheckHandler(db *gorm.DB, categorization services.CategorizationServiceInterface, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:             db,
		categorization: categorization,
		breaker:        breaker,
	}
}

// HealthCheck reports database connectivity and the categorization pipeline state.
// An open classifier breaker degrades the AI stage but does not fail the check.
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,rulesVersion=int,classifier=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceIDFromContext(c),
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	response := map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.categorization != nil {
		response["rulesVersion"] = h.categorization.RulesVersion()
	}
	if h.breaker != nil {
		response["classifier"] = h.breaker.GetState().String()
	} else {
		response["classifier"] = "disabled"
	}

	return c.JSON(http.StatusOK, response)
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
