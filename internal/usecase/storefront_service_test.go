package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
)

func newTestStorefront(products []domain.Product, recorder Recorder) *StorefrontService {
	catalog := NewCatalogService(&MockCatalogSource{products: products}, NewMockCatalogCache(), CatalogServiceConfig{}, zap.NewNop(), recorder)
	return NewStorefrontService(catalog, StorefrontServiceConfig{EnableDebugLogging: true}, zap.NewNop(), recorder)
}

func TestNewStorefrontService(t *testing.T) {
	t.Run("uses default tag groups", func(t *testing.T) {
		svc := newTestStorefront(nil, nil)
		if len(svc.TagGroups()) != 2 {
			t.Errorf("len(TagGroups()) = %d, want 2", len(svc.TagGroups()))
		}
	})

	t.Run("uses configured tag groups", func(t *testing.T) {
		catalog := NewCatalogService(&MockCatalogSource{}, NewMockCatalogCache(), CatalogServiceConfig{}, nil, nil)
		svc := NewStorefrontService(catalog, StorefrontServiceConfig{
			TagGroups: []domain.TagGroup{{Label: "Trade", Tags: []string{"Roofer"}}},
		}, nil, nil)
		if got := svc.TagGroups(); len(got) != 1 || got[0].Tags[0] != "Roofer" {
			t.Errorf("TagGroups() = %v, want single Roofer group", got)
		}
	})
}

func TestStorefrontService_Listing(t *testing.T) {
	ctx := context.Background()
	products := []domain.Product{
		{
			ID:           "p1",
			Name:         "Licensed Electrician",
			Description:  strPtr("OR based"),
			Images:       []string{"https://img.example.com/p1.png"},
			DefaultPrice: &domain.Price{UnitAmount: int64Ptr(12500)},
		},
		{ID: "p2", Name: "Plumber", Description: strPtr("TX")},
	}

	t.Run("empty search shows everything with reset disabled", func(t *testing.T) {
		svc := newTestStorefront(products, nil)

		listing, err := svc.Listing(ctx, "   ", nil)
		if err != nil {
			t.Fatalf("Listing() error = %v", err)
		}
		if listing.Total != 2 || len(listing.Items) != 2 {
			t.Errorf("Total = %d, want 2", listing.Total)
		}
		if !listing.ResetDisabled {
			t.Error("ResetDisabled = false, want true for empty search")
		}
		if listing.Items[0].Price != "$125.00" {
			t.Errorf("Items[0].Price = %q, want $125.00", listing.Items[0].Price)
		}
		if listing.Items[1].Price != "" {
			t.Errorf("Items[1].Price = %q, want empty", listing.Items[1].Price)
		}
	})

	t.Run("filters and marks active tags", func(t *testing.T) {
		svc := newTestStorefront(products, nil)

		listing, err := svc.Listing(ctx, "Electrician", nil)
		if err != nil {
			t.Fatalf("Listing() error = %v", err)
		}
		if listing.Total != 1 || listing.Items[0].ID != "p1" {
			t.Errorf("Items = %+v, want only p1", listing.Items)
		}
		if listing.ResetDisabled {
			t.Error("ResetDisabled = true, want false")
		}
		if !listing.TagGroups[0].Tags[0].Active {
			t.Error("Electrician tag should be active")
		}
		if listing.TagGroups[1].Tags[0].Active {
			t.Error("OR tag should not be active")
		}
	})

	t.Run("attaches cart quantities", func(t *testing.T) {
		svc := newTestStorefront(products, nil)
		cart := &MockCartStore{items: []domain.CartItem{{ID: "p1", Quantity: 3}}}

		listing, err := svc.Listing(ctx, "", cart)
		if err != nil {
			t.Fatalf("Listing() error = %v", err)
		}
		if listing.Items[0].Quantity != 3 {
			t.Errorf("p1 quantity = %d, want 3", listing.Items[0].Quantity)
		}
		if listing.Items[1].Quantity != 0 {
			t.Errorf("p2 quantity = %d, want 0", listing.Items[1].Quantity)
		}
	})

	t.Run("propagates catalog failure", func(t *testing.T) {
		catalog := NewCatalogService(&MockCatalogSource{err: errors.New("boom")}, NewMockCatalogCache(), CatalogServiceConfig{}, nil, nil)
		svc := NewStorefrontService(catalog, StorefrontServiceConfig{}, nil, nil)

		_, err := svc.Listing(ctx, "", nil)
		if !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})
}

func TestStorefrontService_Toggle(t *testing.T) {
	svc := newTestStorefront(nil, nil)

	state := svc.Toggle("electrician", "TX")
	if state.SearchTerm != "electrician TX" {
		t.Errorf("SearchTerm = %q, want %q", state.SearchTerm, "electrician TX")
	}
	if len(state.ActiveTokens) != 2 || state.ActiveTokens[1] != "tx" {
		t.Errorf("ActiveTokens = %v, want [electrician tx]", state.ActiveTokens)
	}

	state = svc.Toggle(state.SearchTerm, "tx")
	if state.SearchTerm != "electrician" {
		t.Errorf("SearchTerm = %q, want electrician", state.SearchTerm)
	}
}

func TestStorefrontService_CartActions(t *testing.T) {
	ctx := context.Background()

	t.Run("increment and decrement report new quantity", func(t *testing.T) {
		recorder := NewMockRecorder()
		svc := newTestStorefront(sampleProducts(), recorder)
		cart := &MockCartStore{}

		for want := 1; want <= 2; want++ {
			got, err := svc.Increment(ctx, cart, "p1")
			if err != nil {
				t.Fatalf("Increment() error = %v", err)
			}
			if got != want {
				t.Errorf("Increment() = %d, want %d", got, want)
			}
		}

		got, err := svc.Decrement(ctx, cart, "p1")
		if err != nil {
			t.Fatalf("Decrement() error = %v", err)
		}
		if got != 1 {
			t.Errorf("Decrement() = %d, want 1", got)
		}

		if recorder.mutations[CartActionIncrement] != 2 || recorder.mutations[CartActionDecrement] != 1 {
			t.Errorf("mutations = %v, want 2 increments and 1 decrement", recorder.mutations)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		svc := newTestStorefront(sampleProducts(), nil)

		_, err := svc.Increment(ctx, &MockCartStore{}, "nope")
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("missing cart or id", func(t *testing.T) {
		svc := newTestStorefront(sampleProducts(), nil)

		if _, err := svc.Decrement(ctx, nil, "p1"); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("nil cart error = %v, want ErrInvalidRequest", err)
		}
		if _, err := svc.Decrement(ctx, &MockCartStore{}, ""); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("empty id error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestStorefrontService_Reset(t *testing.T) {
	state := newTestStorefront(nil, nil).Reset()
	if state.SearchTerm != "" || len(state.ActiveTokens) != 0 {
		t.Errorf("Reset() = %+v, want empty search", state)
	}
}

func TestStorefrontService_Clear(t *testing.T) {
	recorder := NewMockRecorder()
	svc := newTestStorefront(nil, recorder)
	cart := &MockCartStore{items: []domain.CartItem{{ID: "p1", Quantity: 2}, {ID: "p2", Quantity: 1}}}

	if err := svc.Clear(cart); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if len(cart.Items()) != 0 {
		t.Errorf("Items() = %v, want empty cart", cart.Items())
	}
	if recorder.mutations[CartActionClear] != 1 {
		t.Errorf("clear mutations = %d, want 1", recorder.mutations[CartActionClear])
	}

	if err := svc.Clear(nil); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("Clear(nil) error = %v, want ErrInvalidRequest", err)
	}
}
