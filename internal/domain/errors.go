package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogUnavailable is returned when the product source cannot be read
	ErrCatalogUnavailable = errors.New("catalog source unavailable")

	// ErrInvalidCatalog is returned when catalog data fails validation
	ErrInvalidCatalog = errors.New("invalid catalog data")

	// ErrRateLimited is returned when the provider rejects a request for rate reasons
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
