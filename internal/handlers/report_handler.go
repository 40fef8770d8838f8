package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"budget-watch/internal/errors"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler renders downloadable reports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateReport renders a summary, detailed or tax report as a file download
// @Summary Generate a report
// @Description summary and detailed reports cover from..to (inclusive, default current month); tax reports cover a calendar year
// @Tags Reports
// @Security BearerAuth
// @Produce plain
// @Produce text/csv
// @Param type path string true "Report type" Enums(summary, detailed, tax)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param year query int false "Tax year"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse "REPORT_001 - Unknown report type"
// @Router /reports/{type} [get]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if _, err := services.ParseReportType(c.Param("type")); err != nil {
		return SendError(c, errors.ReportUnknownType, errors.WithDetails(err.Error()))
	}

	opts, err := parseReportOptions(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	report, err := h.reportService.GenerateReport(c.Request().Context(), userID, c.Param("type"), opts)
	if err != nil {
		return SendServiceError(c, err)
	}

	content, err := report.Generate()
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename()))
	return c.Blob(http.StatusOK, report.ContentType(), content)
}

func parseReportOptions(c echo.Context) (services.ReportOptions, error) {
	var opts services.ReportOptions

	from, err := getDateParam(c, "from")
	if err != nil {
		return opts, err
	}
	to, err := getDateParam(c, "to")
	if err != nil {
		return opts, err
	}
	opts.From, opts.To = from, to

	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1900 || year > 9999 {
			return opts, fmt.Errorf("invalid year %q", raw)
		}
		opts.Year = year
	}

	return opts, nil
}
