package usecase

import "github.com/storefront/backend/internal/domain"

// FilterProducts keeps the products whose name and description contain every active token.
// Matching is exact token equality ("plumb" does not match "plumber").
// With no active tokens the input slice is returned as is.
func FilterProducts(products []domain.Product, activeTokens []string) []domain.Product {
	if len(activeTokens) == 0 {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if matchesAll(product, activeTokens) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

func matchesAll(product domain.Product, activeTokens []string) bool {
	haystack := TokenSet(product.Name + " " + product.DescriptionText())
	for _, t := range activeTokens {
		if _, ok := haystack[t]; !ok {
			return false
		}
	}
	return true
}
