package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-watch/internal/amqp"
	"budget-watch/internal/cache"
	"budget-watch/internal/classifier"
	"budget-watch/internal/config"
	"budget-watch/internal/database"
	"budget-watch/internal/handlers"
	"budget-watch/internal/middleware"
	"budget-watch/internal/repositories"
	"budget-watch/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const cacheSweepInterval = time.Minute

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded, using process environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	var (
		accountRepo     = repositories.NewAccountRepository(db.DB)
		alertRepo       = repositories.NewBudgetAlertRepository(db.DB)
		budgetRepo      = repositories.NewBudgetRepository(db.DB)
		ruleRepo        = repositories.NewCategorizationRuleRepository(db.DB)
		categoryRepo    = repositories.NewCategoryRepository(db.DB)
		transactionRepo = repositories.NewTransactionRepository(db.DB)
	)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	auditLogger := services.NewAuditLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	categoryService := services.NewCategoryService(categoryRepo)
	if created, err := categoryService.EnsureSystemCategories(ctx); err != nil {
		logger.Error("failed to ensure system categories", "error", err)
		os.Exit(1)
	} else if created > 0 {
		logger.Info("system categories created", "count", created)
	}

	// The breaker is shared with the health endpoint even when the AI stage is off.
	breaker := services.NewCircuitBreaker(services.ClassifierCircuitBreakerConfig(cfg.Categorization))
	aiStrategy, err := buildAIStrategy(cfg.Categorization, breaker, metrics, auditLogger)
	if err != nil {
		logger.Error("failed to build AI classifier", "error", err)
		os.Exit(1)
	}

	categorizationService := services.NewCategorizationService(
		ruleRepo, categoryRepo, aiStrategy, metrics, auditLogger, cfg.Categorization.BatchWorkers,
	)
	if _, err := categorizationService.ReloadRules(ctx); err != nil {
		logger.Error("failed to load categorization rules", "error", err)
		os.Exit(1)
	}

	cacheManager := cache.NewManager()
	analyticsCache := services.NewAnalyticsCache(cfg.Cache.MaxEntries, cfg.Cache.TTL, metrics)
	cacheManager.Register(analyticsCache)
	cacheManager.StartCleanup(cacheSweepInterval)
	defer cacheManager.Stop()

	notifier := services.NewMultiNotifier(metrics, auditLogger).
		Add("store", services.NewAlertStore(alertRepo))
	if cfg.Notification.AMQPURL != "" {
		publisher, err := amqp.NewAlertPublisher(cfg.Notification.AMQPURL, cfg.Notification.AMQPExchange, cfg.Notification.AMQPQueue)
		if err != nil {
			logger.Error("failed to connect alert publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to close alert publisher", "error", err)
			}
		}()
		notifier.Add("amqp", publisher)
	}
	notifier.Add("log", services.NewLogNotifier(auditLogger))

	events := services.NewTransactionSubject(services.NewTelemetryFaultReporter(auditLogger, metrics))
	events.Attach(services.NewBudgetAlertObserver(
		accountRepo, budgetRepo, transactionRepo, alertRepo, services.NewAlertFactory(), notifier, metrics,
	))
	events.Attach(services.NewCacheInvalidationObserver(analyticsCache))

	backfill := services.NewCategorizationBackfillWorker(
		transactionRepo, categorizationService, events, auditLogger, metrics,
		cfg.Categorization.BackfillInterval, cfg.Categorization.BackfillBatchSize,
	)
	backfill.Start(ctx)
	defer backfill.Stop()

	limiter := middleware.NewVisitorLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)

	api := &apiHandlers{
		transactions: handlers.NewTransactionHandler(services.NewTransactionService(
			transactionRepo, accountRepo, categoryRepo, categorizationService, events, auditLogger, metrics,
		)),
		rules: handlers.NewRuleHandler(categorizationService, backfill),
		budgets: handlers.NewBudgetHandler(services.NewBudgetService(
			budgetRepo, alertRepo, transactionRepo, categoryRepo, analyticsCache, auditLogger, metrics,
		)),
		analytics: handlers.NewAnalyticsHandler(services.NewAnalyticsService(
			transactionRepo, accountRepo, budgetRepo, alertRepo, analyticsCache,
		)),
		reports: handlers.NewReportHandler(services.NewReportService(
			transactionRepo, categoryRepo, services.NewReportFactory(), metrics,
		)),
		categories: handlers.NewCategoryHandler(categoryService),
		health:     handlers.NewHealthCheckHandler(db.DB, categorizationService, breaker),
	}

	tokenService := services.NewTokenService(&cfg.JWT)
	if !cfg.IsProduction() {
		api.dev = handlers.NewDevHandler(tokenService)
	}

	e := newRouter(cfg, api, tokenService, limiter, metrics)

	srv := &http.Server{
		Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting budget-watch server",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"ai_enabled", aiStrategy != nil,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped gracefully")
}

// buildAIStrategy returns nil when the AI stage is disabled, leaving the chain rule-only.
func buildAIStrategy(
	cfg config.CategorizationConfig,
	breaker services.CircuitBreakerInterface,
	metrics services.MetricsRecorderInterface,
	auditLogger services.AuditLoggerInterface,
) (*services.AIStrategy, error) {
	if !cfg.AIEnabled {
		return nil, nil
	}

	client, err := classifier.NewOpenAIClient(classifier.Config{
		Endpoint: cfg.AIEndpoint,
		APIKey:   cfg.AIAPIKey,
		Model:    cfg.AIModel,
	})
	if err != nil {
		return nil, err
	}

	guarded := services.NewGuardedClassifier(
		client, breaker, services.GuardedClassifierConfigFromSettings(cfg), metrics, auditLogger,
	)
	return services.NewAIStrategy(guarded, cfg.AIConfidenceThreshold, metrics, auditLogger), nil
}
