package usecase

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain"
)

// MockCartStore records store calls and keeps lines in a slice
type MockCartStore struct {
	items   []domain.CartItem
	added   []domain.CartItem
	removed []string
}

func (m *MockCartStore) Items() []domain.CartItem {
	return m.items
}

func (m *MockCartStore) AddItem(item domain.CartItem) {
	m.added = append(m.added, item)
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity += item.Quantity
			return
		}
	}
	m.items = append(m.items, item)
}

func (m *MockCartStore) RemoveItem(id string) {
	m.removed = append(m.removed, id)
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Quantity--
			if m.items[i].Quantity <= 0 {
				m.items = append(m.items[:i], m.items[i+1:]...)
			}
			return
		}
	}
}

func (m *MockCartStore) Clear() {
	m.items = nil
}

// MockCatalogSource is a mock implementation of domain.CatalogSource
type MockCatalogSource struct {
	products []domain.Product
	err      error
	calls    int
}

func (m *MockCatalogSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

// MockCatalogCache is a mock implementation of domain.CatalogCache
type MockCatalogCache struct {
	data     map[string][]domain.Product
	setError error
	lastTTL  time.Duration
}

func NewMockCatalogCache() *MockCatalogCache {
	return &MockCatalogCache{data: make(map[string][]domain.Product)}
}

func (m *MockCatalogCache) Get(ctx context.Context, key string) ([]domain.Product, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCatalogCache) Set(ctx context.Context, key string, products []domain.Product, ttl time.Duration) error {
	if m.setError != nil {
		return m.setError
	}
	m.lastTTL = ttl
	m.data[key] = products
	return nil
}

func (m *MockCatalogCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// MockRecorder counts recorded events
type MockRecorder struct {
	loads     map[bool]int
	mutations map[string]int
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{loads: map[bool]int{}, mutations: map[string]int{}}
}

func (m *MockRecorder) CatalogLoaded(source string, ok bool) { m.loads[ok]++ }
func (m *MockRecorder) CartMutated(action string) { m.mutations[action]++ }
