package domain

import (
	"context"
	"time"
)

// CatalogSource supplies the ordered product list
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]Product, error)
}

// CartStore is the shopper's cart. Callers only go through these methods;
// merge and clamp policy belong to the implementation.
type CartStore interface {
	Items() []CartItem
	AddItem(item CartItem)
	RemoveItem(id string)
}

// CatalogCache holds product list snapshots between source reads
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
