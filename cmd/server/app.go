package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver

	"github.com/AdrianTrill/travel-content-hub/internal/config"
	"github.com/AdrianTrill/travel-content-hub/internal/generation"
	"github.com/AdrianTrill/travel-content-hub/internal/imagegen"
	"github.com/AdrianTrill/travel-content-hub/internal/platform/diffusion"
	"github.com/AdrianTrill/travel-content-hub/internal/platform/gemini"
	"github.com/AdrianTrill/travel-content-hub/internal/platform/jsonfile"
	"github.com/AdrianTrill/travel-content-hub/internal/platform/openai"
	"github.com/AdrianTrill/travel-content-hub/internal/platform/postgres"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

// application holds the shared dependencies of the server. It is created
// once at startup by newApplication and owns the resources closed in cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the jsonfile store backend is selected.
	db *sql.DB

	contentService *generation.Service
	orchestrator   *imagegen.Orchestrator
	contentStore   store.ContentStore
}

// newApplication wires the application dependencies from the loaded
// configuration: the text-generation provider, the content service, the
// diffusion backend registry, and the published-content store.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	provider, err := newProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text generation provider: %w", err)
	}

	app.contentService = generation.NewService(provider, generation.ServiceConfig{
		Model:          cfg.LLM.Model,
		FallbackModels: cfg.LLM.FallbackModels,
		Temperature:    cfg.LLM.Temperature,
		MaxTokens:      cfg.LLM.MaxTokens,
	}, logger)

	orchestrator, err := newOrchestrator(ctx, cfg.Image, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image generation: %w", err)
	}
	app.orchestrator = orchestrator

	if err := app.initContentStore(cfg.Store, logger); err != nil {
		return nil, fmt.Errorf("failed to initialize content store: %w", err)
	}

	return app, nil
}

// newProvider selects the text-generation provider named by the
// configuration.
func newProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Provider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewProvider(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
		}, logger)
	case "gemini":
		return gemini.NewProvider(ctx, gemini.Config{
			APIKey: cfg.GeminiAPIKey,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// newOrchestrator probes the diffusion sidecar for each pipeline mode and
// builds the orchestrator. Unreachable pipelines are logged and skipped;
// generation requests fall back across whatever loaded.
func newOrchestrator(ctx context.Context, cfg config.ImageConfig, logger *slog.Logger) (*imagegen.Orchestrator, error) {
	deviceClass, err := imagegen.ParseDeviceClass(cfg.Device)
	if err != nil {
		return nil, err
	}
	device := imagegen.Device{Class: deviceClass, VRAMGB: cfg.VRAMGB}

	diffusionCfg := diffusion.Config{
		BaseURL:        cfg.BaseURL,
		TimeoutSeconds: cfg.TimeoutSeconds,
		HalfPrecision:  deviceClass.HalfPrecision(),
	}

	registry := imagegen.LoadRegistry(ctx, map[imagegen.Mode]imagegen.BackendLoader{
		imagegen.ModeTurbo:   diffusion.Loader(diffusionCfg, imagegen.ModeTurbo, logger),
		imagegen.ModeQuality: diffusion.Loader(diffusionCfg, imagegen.ModeQuality, logger),
		imagegen.ModeRefiner: diffusion.Loader(diffusionCfg, imagegen.ModeRefiner, logger),
	}, logger)

	return imagegen.NewOrchestrator(registry, device, logger), nil
}

// initContentStore selects the published-content store named by the
// configuration, running migrations on the postgres path.
func (app *application) initContentStore(cfg config.StoreConfig, logger *slog.Logger) error {
	switch cfg.Backend {
	case "jsonfile":
		contentStore, err := jsonfile.NewContentStore(cfg.FilePath, logger)
		if err != nil {
			return err
		}
		app.contentStore = contentStore
		return nil
	case "postgres":
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open database connection: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.db = db
		app.contentStore = postgres.NewPostgresContentStore(db, logger)
		return nil
	default:
		return fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}

// cleanup releases resources owned by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
