// Package cartstore keeps shopper carts in memory, one per session id.
package cartstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain"
)

// Cart is a single shopper's cart. It implements domain.CartStore and owns the
// merge and clamp policy: adds merge into an existing line, removes take one unit
// and drop the line at zero.
type Cart struct {
	mu       sync.Mutex
	items    []domain.CartItem
	lastUsed time.Time
}

var _ domain.CartStore = (*Cart)(nil)

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{lastUsed: time.Now()}
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem merges item into the line with the same id or appends a new line.
// Name, price and image are refreshed from the incoming item.
func (c *Cart) AddItem(item domain.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastUsed = time.Now()

	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Name = item.Name
			c.items[i].Price = item.Price
			c.items[i].ImageURL = item.ImageURL
			c.items[i].Quantity += qty
			return
		}
	}

	item.Quantity = qty
	c.items = append(c.items, item)
}

// RemoveItem takes one unit off the line with the given id. Unknown ids are ignored.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastUsed = time.Now()

	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		c.items[i].Quantity--
		if c.items[i].Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.lastUsed = time.Now()
}

func (c *Cart) touch(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastUsed = now
}

func (c *Cart) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

// Registry maps session ids to carts
type Registry struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	maxIdle time.Duration
}

// NewRegistry creates a registry whose carts are dropped after maxIdle without use.
// A non-positive maxIdle keeps carts forever.
func NewRegistry(maxIdle time.Duration) *Registry {
	return &Registry{
		carts:   make(map[string]*Cart),
		maxIdle: maxIdle,
	}
}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.NewString()
}

// Cart returns the cart for sessionID, creating it on first use.
// Fetching a cart counts as use, so Prune keeps it for another maxIdle.
func (r *Registry) Cart(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		cart = NewCart()
		r.carts[sessionID] = cart
	} else {
		cart.touch(time.Now())
	}
	return cart
}

// Len returns the number of live carts
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// Prune drops carts idle since before now-maxIdle and returns how many were dropped
func (r *Registry) Prune(now time.Time) int {
	if r.maxIdle <= 0 {
		return 0
	}
	cutoff := now.Add(-r.maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, cart := range r.carts {
		if cart.idleSince().Before(cutoff) {
			delete(r.carts, id)
			dropped++
		}
	}
	return dropped
}

// Run prunes idle carts every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Prune(now)
		}
	}
}
