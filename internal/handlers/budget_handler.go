package handlers

import (
	"net/http"

	"budget-watch/internal/dto"
	"budget-watch/internal/errors"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budgets and the alerts raised against them
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// CreateBudget creates a budget for one category
// @Summary Create a budget
// @Description One budget per category. Period defaults to monthly and the alert threshold to 0.80.
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Budget already exists for the category"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// ListBudgets returns the caller's budgets
// @Summary List budgets
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Budget
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgets, err := h.budgetService.ListBudgets(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, budgets)
}

// GetBudget returns one budget
// @Summary Get a budget
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} models.Budget
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), userID, budgetID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// UpdateBudget changes a budget's limit, period or threshold
// @Summary Update a budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} models.Budget
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), userID, budgetID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget
// @Summary Delete a budget
// @Tags Budgets
// @Security BearerAuth
// @Param id path string true "Budget ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), userID, budgetID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBudgetStatus reports spending against a budget for its current period
// @Summary Budget status
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} models.BudgetStatus
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id}/status [get]
func (h *BudgetHandler) GetBudgetStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	status, err := h.budgetService.GetBudgetStatus(c.Request().Context(), userID, budgetID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

// ListAlerts pages through the caller's budget alerts
// @Summary List budget alerts
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param unread query bool false "Only unread alerts"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListAlertsResponse
// @Router /alerts [get]
func (h *BudgetHandler) ListAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	unreadOnly := c.QueryParam("unread") == "true"
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)

	response, err := h.budgetService.ListAlerts(c.Request().Context(), userID, unreadOnly, offset, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// MarkAlertRead marks one alert as read
// @Summary Mark an alert read
// @Tags Alerts
// @Security BearerAuth
// @Param id path string true "Alert ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "ALERT_001 - Alert not found"
// @Router /alerts/{id}/read [put]
func (h *BudgetHandler) MarkAlertRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	alertID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid alert ID"))
	}

	if err := h.budgetService.MarkAlertRead(c.Request().Context(), userID, alertID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
