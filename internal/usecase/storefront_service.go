package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
)

// Cart actions reported to the Recorder
const (
	CartActionIncrement = "increment"
	CartActionDecrement = "decrement"
	CartActionClear     = "clear"
)

// CartClearer is a cart store that can drop all of its lines at once
type CartClearer interface {
	Clear()
}

// StorefrontServiceConfig holds configuration for the storefront service
type StorefrontServiceConfig struct {
	TagGroups          []domain.TagGroup
	EnableDebugLogging bool
}

// StorefrontService builds product listings and routes cart actions
type StorefrontService struct {
	catalog            *CatalogService
	tagGroups          []domain.TagGroup
	enableDebugLogging bool
	logger             *zap.Logger
	metrics            Recorder
}

// NewStorefrontService creates a new storefront service
func NewStorefrontService(
	catalog *CatalogService,
	config StorefrontServiceConfig,
	logger *zap.Logger,
	metrics Recorder,
) *StorefrontService {
	tagGroups := config.TagGroups
	if len(tagGroups) == 0 {
		tagGroups = domain.DefaultTagGroups()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NopRecorder{}
	}

	return &StorefrontService{
		catalog:            catalog,
		tagGroups:          tagGroups,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger,
		metrics:            metrics,
	}
}

// TagGroups returns the configured tag rows
func (s *StorefrontService) TagGroups() []domain.TagGroup {
	return s.tagGroups
}

// Listing filters the catalog by the search text and attaches cart quantities.
// A nil cart shows every quantity as 0.
func (s *StorefrontService) Listing(
	ctx context.Context,
	search string,
	cart domain.CartStore,
) (*domain.Listing, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	activeTokens := Tokenize(search)
	filtered := FilterProducts(products, activeTokens)

	var cartItems []domain.CartItem
	if cart != nil {
		cartItems = cart.Items()
	}

	items := make([]domain.ListingItem, 0, len(filtered))
	for _, p := range filtered {
		price, _ := FormatPrice(p)
		items = append(items, domain.ListingItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.FirstImage(),
			Price:       price,
			Quantity:    QuantityFor(cartItems, p.ID),
		})
	}

	if s.enableDebugLogging {
		s.logger.Debug("listing built",
			zap.String("search", search),
			zap.Strings("tokens", activeTokens),
			zap.Int("matched", len(items)),
			zap.Int("catalog", len(products)))
	}

	return &domain.Listing{
		SearchState:   domain.SearchState{SearchTerm: search, ActiveTokens: activeTokens},
		ResetDisabled: len(activeTokens) == 0,
		TagGroups:     TagGroupStates(s.tagGroups, activeTokens),
		Items:         items,
		Total:         len(items),
	}, nil
}

// Toggle applies a tag click to the search text
func (s *StorefrontService) Toggle(search, tag string) domain.SearchState {
	next := ToggleTag(search, tag)
	return domain.SearchState{SearchTerm: next, ActiveTokens: Tokenize(next)}
}

// Reset clears the search text
func (s *StorefrontService) Reset() domain.SearchState {
	return domain.SearchState{SearchTerm: ResetSearch(), ActiveTokens: []string{}}
}

// Increment adds one unit of a catalog product to the cart and returns the new quantity
func (s *StorefrontService) Increment(ctx context.Context, cart domain.CartStore, productID string) (int, error) {
	view, err := s.view(ctx, cart, productID)
	if err != nil {
		return 0, err
	}
	view.Increment()
	s.metrics.CartMutated(CartActionIncrement)
	return view.Quantity(), nil
}

// Decrement removes one unit of a catalog product from the cart and returns the new quantity
func (s *StorefrontService) Decrement(ctx context.Context, cart domain.CartStore, productID string) (int, error) {
	view, err := s.view(ctx, cart, productID)
	if err != nil {
		return 0, err
	}
	view.Decrement()
	s.metrics.CartMutated(CartActionDecrement)
	return view.Quantity(), nil
}

// Clear empties the cart
func (s *StorefrontService) Clear(cart CartClearer) error {
	if cart == nil {
		return domain.ErrInvalidRequest
	}
	cart.Clear()
	s.metrics.CartMutated(CartActionClear)
	return nil
}

func (s *StorefrontService) view(ctx context.Context, cart domain.CartStore, productID string) (*CartQuantityView, error) {
	if cart == nil || productID == "" {
		return nil, domain.ErrInvalidRequest
	}
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	return NewCartQuantityView(product, cart), nil
}
