package usecase

import (
	"fmt"

	"github.com/storefront/backend/internal/domain"
)

// CartQuantityView binds one product to a cart store. It reads the cart for display
// and issues add/remove requests; it never edits cart lines itself.
type CartQuantityView struct {
	product domain.Product
	store   domain.CartStore
}

// NewCartQuantityView creates a quantity control for product backed by store
func NewCartQuantityView(product domain.Product, store domain.CartStore) *CartQuantityView {
	return &CartQuantityView{product: product, store: store}
}

// Quantity returns how many units of the product are in the cart
func (v *CartQuantityView) Quantity() int {
	return QuantityFor(v.store.Items(), v.product.ID)
}

// Increment asks the store to add one unit of the product
func (v *CartQuantityView) Increment() {
	v.store.AddItem(NewCartItem(v.product))
}

// Decrement asks the store to remove one unit of the product
func (v *CartQuantityView) Decrement() {
	v.store.RemoveItem(v.product.ID)
}

// QuantityFor returns the quantity of the first line whose id equals productID, or 0
func QuantityFor(items []domain.CartItem, productID string) int {
	for _, item := range items {
		if item.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// NewCartItem builds the single-unit line item sent to the store on increment.
// A product without a default price is added at 0.
func NewCartItem(product domain.Product) domain.CartItem {
	price, _ := product.UnitAmount()
	return domain.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    price,
		ImageURL: product.FirstImage(),
		Quantity: 1,
	}
}

// FormatPrice renders the default price in dollars. It reports false when there is
// no price to show, which includes a zero amount.
func FormatPrice(product domain.Product) (string, bool) {
	amount, ok := product.UnitAmount()
	if !ok || amount == 0 {
		return "", false
	}
	return fmt.Sprintf("$%.2f", float64(amount)/100), true
}

// CartTotals sums unit counts and the subtotal in minor currency units
func CartTotals(items []domain.CartItem) (quantity int, subtotal int64) {
	for _, item := range items {
		quantity += item.Quantity
		subtotal += item.Price * int64(item.Quantity)
	}
	return quantity, subtotal
}
