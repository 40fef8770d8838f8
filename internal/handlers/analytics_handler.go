package handlers

import (
	"net/http"
	"time"

	"budget-watch/internal/errors"
	"budget-watch/internal/models"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the cached analytics read models
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	now              func() time.Time
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// GetCategorySummary aggregates the caller's spending in one category
// @Summary Category summary
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD), defaults to the first of the month"
// @Param endDate query string false "Exclusive end date (YYYY-MM-DD), defaults to the first of next month"
// @Success 200 {object} models.CategorySummary
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date range"
// @Router /analytics/categories/{categoryId} [get]
func (h *AnalyticsHandler) GetCategorySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	window, err := h.parseWindow(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	summary, err := h.analyticsService.GetCategorySummary(c.Request().Context(), userID, categoryID, window)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetAccountSummary aggregates one account's activity
// @Summary Account summary
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Exclusive end date (YYYY-MM-DD)"
// @Success 200 {object} models.AccountSummary
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /analytics/accounts/{accountId} [get]
func (h *AnalyticsHandler) GetAccountSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	window, err := h.parseWindow(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	summary, err := h.analyticsService.GetAccountSummary(c.Request().Context(), userID, accountID, window)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetDashboard returns the caller's landing view for the current month
// @Summary Dashboard
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	dashboard, err := h.analyticsService.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// parseWindow reads startDate/endDate, defaulting each side to the current month
func (h *AnalyticsHandler) parseWindow(c echo.Context) (models.PeriodWindow, error) {
	now := h.now().UTC()
	window := models.PeriodWindow{
		Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
	window.End = window.Start.AddDate(0, 1, 0)

	startDate, err := getDateParam(c, "startDate")
	if err != nil {
		return window, err
	}
	if !startDate.IsZero() {
		window.Start = startDate
	}

	endDate, err := getDateParam(c, "endDate")
	if err != nil {
		return window, err
	}
	if !endDate.IsZero() {
		window.End = endDate
	}

	return window, nil
}
