package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
)

const catalogCacheKey = "catalog:products"

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	SourceName string
	CacheTTL   time.Duration
}

// CatalogService serves the product list from cache, falling back to the source
type CatalogService struct {
	source     domain.CatalogSource
	cache      domain.CatalogCache
	sourceName string
	cacheTTL   time.Duration
	logger     *zap.Logger
	metrics    Recorder
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	source domain.CatalogSource,
	cache domain.CatalogCache,
	config CatalogServiceConfig,
	logger *zap.Logger,
	metrics Recorder,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}
	sourceName := config.SourceName
	if sourceName == "" {
		sourceName = "unknown"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NopRecorder{}
	}

	return &CatalogService{
		source:     source,
		cache:      cache,
		sourceName: sourceName,
		cacheTTL:   cacheTTL,
		logger:     logger,
		metrics:    metrics,
	}
}

// Products returns the ordered product list.
// Flow: check cache -> read source -> cache -> return
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	if products, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
		return products, nil
	}

	products, err := s.source.ListProducts(ctx)
	if err != nil {
		s.metrics.CatalogLoaded(s.sourceName, false)
		s.logger.Error("catalog load failed", zap.String("source", s.sourceName), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	s.metrics.CatalogLoaded(s.sourceName, true)
	s.logger.Debug("catalog loaded",
		zap.String("source", s.sourceName),
		zap.Int("products", len(products)))

	if err := s.cache.Set(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
		// A failed cache write only costs a refetch
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}

	return products, nil
}

// Product finds a single product by id
func (s *CatalogService) Product(ctx context.Context, id string) (domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Refresh drops the cached snapshot so the next read goes to the source
func (s *CatalogService) Refresh(ctx context.Context) error {
	return s.cache.Delete(ctx, catalogCacheKey)
}
