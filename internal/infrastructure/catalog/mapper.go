package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/storefront/backend/internal/domain"
)

// providerProduct is a product object from the payments provider's listing API
type providerProduct struct {
	ID           string          `json:"id"`
	Object       string          `json:"object"`
	Active       bool            `json:"active"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Images       []string        `json:"images"`
	DefaultPrice json.RawMessage `json:"default_price"` // price object when expanded, id string otherwise
}

// providerPrice is an expanded price object
type providerPrice struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	UnitAmount *int64 `json:"unit_amount"`
	Currency   string `json:"currency"`
}

// providerProductList is one page of the product listing
type providerProductList struct {
	Object  string            `json:"object"`
	Data    []providerProduct `json:"data"`
	HasMore bool              `json:"has_more"`
}

// mapToProduct converts a provider product to our domain Product.
// A default price that was not expanded (a bare id) or is null maps to no price.
func mapToProduct(p providerProduct) domain.Product {
	product := domain.Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		DefaultPrice: mapPrice(p.DefaultPrice),
	}
	if len(p.Images) > 0 {
		product.Images = append([]string(nil), p.Images...)
	}
	return product
}

func mapPrice(raw json.RawMessage) *domain.Price {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var price providerPrice
	if err := json.Unmarshal(raw, &price); err != nil {
		return nil
	}
	return &domain.Price{
		ID:         price.ID,
		UnitAmount: price.UnitAmount,
		Currency:   price.Currency,
	}
}

// mapProducts keeps active products in listing order
func mapProducts(list []providerProduct) []domain.Product {
	out := make([]domain.Product, 0, len(list))
	for _, p := range list {
		if !p.Active {
			continue
		}
		out = append(out, mapToProduct(p))
	}
	return out
}
