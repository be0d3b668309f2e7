package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/config"
	"github.com/querylab/analytics-engine/pkg/database"
	"github.com/querylab/analytics-engine/pkg/handlers"
	"github.com/querylab/analytics-engine/pkg/llm"
	"github.com/querylab/analytics-engine/pkg/middleware"
	"github.com/querylab/analytics-engine/pkg/planner"
	"github.com/querylab/analytics-engine/pkg/reports"
	"github.com/querylab/analytics-engine/pkg/repositories"
	"github.com/querylab/analytics-engine/pkg/schema"
	"github.com/querylab/analytics-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", cfg.Database.Host),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.URL(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.URL(), cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// The schema snapshot is loaded once at startup. A failure here means
	// every endpoint would be serving wrong answers, so abort.
	registry, err := schema.Load(ctx, db.Pool, logger)
	if err != nil {
		logger.Fatal("failed to load schema snapshot", zap.Error(err))
	}
	logger.Info("schema snapshot loaded", zap.Int("tables", registry.Len()))

	llmClient, err := llm.NewClient(&llm.Config{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	}, logger.Named("llm"))
	if err != nil {
		logger.Fatal("failed to create LLM client", zap.Error(err))
	}

	interpreter := planner.NewInterpreter(llmClient, logger.Named("planner"))
	executor := reports.NewExecutor(db.Pool, logger.Named("reports"))
	adminRepo := repositories.NewAdminRequestRepository(db.Pool)

	schemaService := services.NewSchemaService(registry)
	analysisService := services.NewAnalysisService(registry, interpreter, logger.Named("analysis"))
	reportService := services.NewReportService(registry, executor, cfg.Reports, logger.Named("reports"))
	adminService := services.NewAdminRequestService(adminRepo, logger.Named("admin"))

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewTablesHandler(schemaService, logger).RegisterRoutes(mux)
	handlers.NewAnalyzeHandler(analysisService, logger).RegisterRoutes(mux)
	handlers.NewReportsHandler(reportService, logger).RegisterRoutes(mux)
	handlers.NewAdminHandler(adminService, logger).RegisterRoutes(mux)

	handler := middleware.CORS(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting analytics-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
