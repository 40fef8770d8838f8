package handlers

import (
	"net/http"

	"budget-watch/internal/dto"
	"budget-watch/internal/errors"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
)

// RuleHandler manages categorization rules and the rule-driven maintenance jobs
type RuleHandler struct {
	categorization services.CategorizationServiceInterface
	backfill       services.CategorizationBackfillWorkerInterface
}

// NewRuleHandler creates a new rule handler. backfill may be nil.
func NewRuleHandler(
	categorization services.CategorizationServiceInterface,
	backfill services.CategorizationBackfillWorkerInterface,
) *RuleHandler {
	return &RuleHandler{
		categorization: categorization,
		backfill:       backfill,
	}
}

// CreateRule stores a categorization rule for the caller
// @Summary Create a categorization rule
// @Description Creates a keyword, merchant or amount_range rule. Rule tables are reloaded before the response.
// @Tags Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRuleRequest true "Rule"
// @Success 201 {object} models.CategorizationRule
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 422 {object} errors.ErrorResponse "RULE_002, RULE_003 or RULE_004"
// @Router /rules [post]
func (h *RuleHandler) CreateRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	rule, err := h.categorization.CreateRule(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, rule)
}

// ListRules returns the caller's rules
// @Summary List categorization rules
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.CategorizationRule
// @Router /rules [get]
func (h *RuleHandler) ListRules(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	rules, err := h.categorization.ListRules(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rules,
		Meta: map[string]interface{}{"rulesVersion": h.categorization.RulesVersion()},
	})
}

// DeactivateRule switches one of the caller's rules off
// @Summary Deactivate a categorization rule
// @Tags Rules
// @Security BearerAuth
// @Param id path string true "Rule ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "RULE_001 - Rule not found"
// @Router /rules/{id} [delete]
func (h *RuleHandler) DeactivateRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	ruleID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID"))
	}

	if err := h.categorization.DeactivateRule(c.Request().Context(), userID, ruleID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReloadRules rebuilds and republishes every rule table
// @Summary Reload categorization rules
// @Description Requires the rules:admin scope
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RulesReloadResponse
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Missing scope"
// @Router /rules/reload [post]
func (h *RuleHandler) ReloadRules(c echo.Context) error {
	response, err := h.categorization.ReloadRules(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// RunBackfill re-runs one batch of uncategorized transactions through the chain
// @Summary Trigger a categorization backfill batch
// @Description Requires the rules:admin scope
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BackfillResult
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Backfill worker disabled"
// @Router /admin/backfill [post]
func (h *RuleHandler) RunBackfill(c echo.Context) error {
	if h.backfill == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Backfill worker is disabled"))
	}

	result, err := h.backfill.ProcessBatch(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
