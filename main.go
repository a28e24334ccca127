package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/jayanth119/campaign-query-engine/pkg/config"
	"github.com/jayanth119/campaign-query-engine/pkg/database"
	"github.com/jayanth119/campaign-query-engine/pkg/datasource"
	"github.com/jayanth119/campaign-query-engine/pkg/handlers"
	"github.com/jayanth119/campaign-query-engine/pkg/llm"
	"github.com/jayanth119/campaign-query-engine/pkg/middleware"
	"github.com/jayanth119/campaign-query-engine/pkg/models"
	"github.com/jayanth119/campaign-query-engine/pkg/repositories"
	"github.com/jayanth119/campaign-query-engine/pkg/services"
	enginesql "github.com/jayanth119/campaign-query-engine/pkg/sql"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", cfg.Database.Database),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model),
		zap.Bool("guard_read_only", cfg.Guard.ReadOnly))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	llmClient, err := llm.NewFromConfig(&llm.Config{
		Provider: cfg.AI.Provider,
		Endpoint: cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
		Timeout:  cfg.AI.Timeout(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	generator := services.NewSQLGenerator(llmClient, models.CampaignDataSchema(), cfg.AI.Temperature, logger)
	guard := enginesql.NewGuard(enginesql.GuardConfig{
		ReadOnly:       cfg.Guard.ReadOnly,
		InjectionCheck: cfg.Guard.InjectionCheck,
	})
	executor := datasource.NewExecutor(db.Pool, cfg.Database.QueryTimeout())
	queryLog := repositories.NewQueryLogRepository(db)

	answerSvc := services.NewAnswerService(generator, guard, executor, queryLog, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewQueryHandler(answerSvc, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting campaign-query-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
