package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-api/internal/config"
	"product-api/internal/database"
	"product-api/internal/handler"
	"product-api/internal/repository"
	"product-api/internal/router"
	"product-api/internal/seed"
	"product-api/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting product API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repository and fill it
	productRepo := repository.NewProductRepository(logger)

	sources, cleanup, err := seedSources(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize seed sources: %w", err)
	}
	seeded, err := seed.Populate(ctx, productRepo, logger, sources...)
	cleanup()
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	logger.Info().Int("products", seeded).Msg("product store ready")

	// Initialize services
	productService := service.NewProductService(productRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)

	// Initialize router
	mux := router.New(productHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedSources builds the configured seed sources in load order. The returned
// cleanup releases the database pool once seeding is over.
func seedSources(ctx context.Context, cfg *config.Config, logger zerolog.Logger) ([]seed.Source, func(), error) {
	var sources []seed.Source
	cleanup := func() {}

	if cfg.Seed.Defaults {
		sources = append(sources, seed.Source{
			Name:   "defaults",
			Loader: seed.NewStaticLoader(seed.DefaultProducts()),
		})
	}

	if cfg.Seed.File != "" {
		// Initialize seed file loader with S3 and local fallback
		fileLoader := seed.NewFileLoader(logger)
		var s3Loader seed.Loader

		if cfg.S3.Enabled {
			loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				s3Loader = loader
			}
		} else {
			logger.Info().Msg("using local file system for seed files (S3 disabled)")
		}

		sources = append(sources, seed.Source{
			Name:   "file",
			Loader: seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger),
			Target: cfg.Seed.File,
		})
	}

	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to initialize database: %w", err)
		}
		cleanup = pool.Close

		sources = append(sources, seed.Source{
			Name:   "database",
			Loader: seed.NewPostgresLoader(pool, logger),
			Target: cfg.Database.Table,
		})
	}

	return sources, cleanup, nil
}
