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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storefront/backend/config"
	httpDelivery "github.com/storefront/backend/internal/delivery/http"
	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/cartstore"
	"github.com/storefront/backend/internal/infrastructure/catalog"
	"github.com/storefront/backend/internal/infrastructure/metrics"
	"github.com/storefront/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}
}

// newCatalogSource returns the product source selected by catalog.source
func newCatalogSource(cfg *config.Config, logger *zap.Logger) domain.CatalogSource {
	if cfg.Catalog.Source == config.SourceProvider {
		return catalog.NewClient(catalog.ClientConfig{
			APIKey:        cfg.Provider.APIKey,
			BaseURL:       cfg.Provider.BaseURL,
			RatePerSecond: cfg.Provider.RatePerSecond,
			Burst:         cfg.Provider.Burst,
		}, logger)
	}
	return catalog.NewFileSource(cfg.Catalog.File)
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting storefront",
		zap.String("version", version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Duration("catalog_ttl", cfg.Catalog.TTL))

	// Initialize infrastructure dependencies
	m := metrics.New(nil)
	productCache := cache.NewMemoryCache[[]domain.Product](cache.DefaultCleanupInterval)
	defer productCache.Close()

	carts := cartstore.NewRegistry(cfg.Cart.MaxIdle)
	m.TrackCarts(carts.Len)
	go carts.Run(ctx, cfg.Cart.SweepInterval)

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		newCatalogSource(cfg, logger),
		productCache,
		usecase.CatalogServiceConfig{
			SourceName: cfg.Catalog.Source,
			CacheTTL:   cfg.Catalog.TTL,
		},
		logger,
		m,
	)
	storefront := usecase.NewStorefrontService(
		catalogService,
		usecase.StorefrontServiceConfig{
			TagGroups:          cfg.TagGroups(),
			EnableDebugLogging: cfg.Log.Debug,
		},
		logger,
		m,
	)

	// Warm the cache; a failure here is retried on the first request
	if _, err := catalogService.Products(ctx); err != nil {
		logger.Warn("initial catalog load failed", zap.Error(err))
	}

	handler := httpDelivery.NewHandler(storefront, catalogService, carts, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
