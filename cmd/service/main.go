// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/motivation-page/internal/adapters/builder"
	"github.com/jsamuelsen/motivation-page/internal/adapters/clients"
	"github.com/jsamuelsen/motivation-page/internal/adapters/clients/acl"
	"github.com/jsamuelsen/motivation-page/internal/adapters/http"
	"github.com/jsamuelsen/motivation-page/internal/adapters/http/handlers"
	"github.com/jsamuelsen/motivation-page/internal/adapters/http/templates"
	"github.com/jsamuelsen/motivation-page/internal/adapters/store"
	"github.com/jsamuelsen/motivation-page/internal/app"
	"github.com/jsamuelsen/motivation-page/internal/platform/config"
	"github.com/jsamuelsen/motivation-page/internal/platform/logging"
	"github.com/jsamuelsen/motivation-page/internal/platform/metrics"
	"github.com/jsamuelsen/motivation-page/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Register service metrics
	serviceMetrics := metrics.New(prometheus.DefaultRegisterer)

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the flat-file entry store
	entryStore := store.NewJSONFile(cfg.Store.Path)
	if err := healthRegistry.Register(entryStore); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Create the picture-of-the-day client (optional dependency)
	var pictureClient ports.PictureClient
	if cfg.Picture.Enabled {
		httpClient, clientErr := clients.New(&clients.Config{
			BaseURL:     cfg.Picture.BaseURL,
			ServiceName: "apod",
			Timeout:     cfg.Picture.Timeout,
			Logger:      logger,
		})
		if clientErr != nil {
			return fmt.Errorf("creating picture HTTP client: %w", clientErr)
		}

		pictureClient = acl.NewAPODClient(httpClient, cfg.Picture.APIKey)
	}

	// 8. Create the site builder
	siteBuilder := builder.New(builder.Config{
		Command: cfg.Builder.Command,
		Args:    cfg.Builder.Args,
		Dir:     cfg.Builder.Dir,
		Timeout: cfg.Builder.Timeout,
	}, logger)

	// 9. Create application services
	entryService := app.NewEntryService(app.EntryServiceConfig{
		Store:   entryStore,
		Metrics: serviceMetrics,
		Logger:  logger,
	})
	pageService := app.NewPageService(app.PageServiceConfig{
		Store:   entryStore,
		Picture: pictureClient,
		Builder: siteBuilder,
		Metrics: serviceMetrics,
		Logger:  logger,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	pagesHandler := handlers.NewPagesHandler(pageService, entryService, serviceMetrics, logger)
	apiHandler := handlers.NewAPIHandler(pageService, entryService)

	// 11. Parse page templates and create the HTTP server
	pageTemplates, err := templates.New()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	server := http.New(&cfg.Server, pageTemplates, logger)

	// 12. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger: logger,
		Pages:  pagesHandler,
		API:    apiHandler,
		Health: healthHandler,
	})

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	logger.Info("admin ready",
		slog.String("url", fmt.Sprintf("http://%s", server.Addr())),
	)

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
