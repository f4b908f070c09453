package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	"finagent/internal/agent"
	"finagent/internal/config"
	"finagent/internal/database"
	"finagent/internal/logger"
	"finagent/internal/marketdata"
	"finagent/internal/router"
	"finagent/internal/validator"
)

// @title           finagent API
// @version         1.0
// @description     Investment portfolio ledger with decimal-exact analytics and natural-language agents.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Market data: Yahoo behind a bounded cache
	prices := marketdata.NewCachedSource(
		marketdata.NewYahooProvider(&http.Client{Timeout: 10 * time.Second}, appConfig.YahooBaseURL),
		appConfig.PriceCacheTTL,
		appConfig.PriceCacheMaxEntries,
	)

	deps := router.NewDeps(dbManager.DB(), dbManager, prices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator, err := newOrchestrator(ctx, appConfig, deps)
	if err != nil {
		return err
	}
	deps.Agents = orchestrator

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting finagent server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newOrchestrator wires the agents. Without a Google API key the agents are
// still loaded, and queries answer 503 until a key is configured.
func newOrchestrator(ctx context.Context, cfg *config.Config, deps router.Deps) (*agent.Orchestrator, error) {
	var client *genai.Client
	if cfg.GoogleAPIKey != "" {
		var err error
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
	} else {
		logger.Get().Warn("GOOGLE_API_KEY is not set, agent queries will be unavailable")
	}

	box := &agent.Toolbox{
		Assets:       deps.Assets,
		Transactions: deps.Transactions,
		Analysis:     deps.Analysis,
	}
	registry, err := agent.NewRegistry(box.Tools()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build agent tools: %w", err)
	}

	return agent.NewOrchestrator(cfg.AgentConfigDir, registry, agent.NewGeminiFactory(client), cfg.AgentTimeout), nil
}
