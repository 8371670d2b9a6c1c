package domain

// CartItem is one line of a shopper's cart
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"` // minor currency units
	ImageURL *string `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}
