package main

import (
	"budget-watch/internal/config"
	"budget-watch/internal/handlers"
	"budget-watch/internal/middleware"
	"budget-watch/internal/models"
	"budget-watch/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type apiHandlers struct {
	transactions *handlers.TransactionHandler
	rules        *handlers.RuleHandler
	budgets      *handlers.BudgetHandler
	analytics    *handlers.AnalyticsHandler
	reports      *handlers.ReportHandler
	categories   *handlers.CategoryHandler
	health       *handlers.HealthCheckHandler
	dev          *handlers.DevHandler // nil in production
}

func newRouter(
	cfg *config.Config,
	h *apiHandlers,
	tokenService services.TokenServiceInterface,
	limiter *middleware.VisitorLimiter,
	metrics services.MetricsRecorderInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiter(limiter, metrics))

	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	if h.dev != nil {
		v1.POST("/dev/token", h.dev.IssueToken)
	}

	protected := v1.Group("", middleware.RequireAuth(tokenService))

	protected.GET("/categories", h.categories.ListCategories)

	write := middleware.RequireScope(models.ScopeTransactionsWrite)
	protected.POST("/transactions", h.transactions.CreateTransaction, write)
	protected.POST("/transactions/categorize", h.transactions.PreviewCategorization)
	protected.GET("/transactions/:id", h.transactions.GetTransaction)
	protected.PUT("/transactions/:id", h.transactions.UpdateTransaction, write)
	protected.PUT("/transactions/:id/category", h.transactions.OverrideCategory, write)
	protected.DELETE("/transactions/:id", h.transactions.DeleteTransaction, write)
	protected.GET("/accounts/:accountId/transactions", h.transactions.ListTransactions)

	admin := middleware.RequireScope(models.ScopeRulesAdmin)
	protected.POST("/rules", h.rules.CreateRule)
	protected.GET("/rules", h.rules.ListRules)
	protected.DELETE("/rules/:id", h.rules.DeactivateRule)
	protected.POST("/rules/reload", h.rules.ReloadRules, admin)
	protected.POST("/admin/backfill", h.rules.RunBackfill, admin)

	protected.POST("/budgets", h.budgets.CreateBudget)
	protected.GET("/budgets", h.budgets.ListBudgets)
	protected.GET("/budgets/:id", h.budgets.GetBudget)
	protected.PUT("/budgets/:id", h.budgets.UpdateBudget)
	protected.DELETE("/budgets/:id", h.budgets.DeleteBudget)
	protected.GET("/budgets/:id/status", h.budgets.GetBudgetStatus)
	protected.GET("/alerts", h.budgets.ListAlerts)
	protected.PUT("/alerts/:id/read", h.budgets.MarkAlertRead)

	protected.GET("/analytics/categories/:categoryId", h.analytics.GetCategorySummary)
	protected.GET("/analytics/accounts/:accountId", h.analytics.GetAccountSummary)
	protected.GET("/analytics/dashboard", h.analytics.GetDashboard)

	protected.GET("/reports/:type", h.reports.GenerateReport)

	return e
}
