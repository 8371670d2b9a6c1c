package domain

// SearchState is the free-text search string together with its derived tokens
type SearchState struct {
	SearchTerm   string   `json:"searchTerm"`
	ActiveTokens []string `json:"activeTokens"`
}

// TagState is a tag button and whether its token is currently active
type TagState struct {
	Tag    string `json:"tag"`
	Active bool   `json:"active"`
}

// TagGroupState is a rendered TagGroup
type TagGroupState struct {
	Label string     `json:"label"`
	Tags  []TagState `json:"tags"`
}

// ListingItem is a product prepared for display with its cart quantity
type ListingItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Price       string  `json:"price,omitempty"` // formatted, e.g. "$12.50"
	Quantity    int     `json:"quantity"`
}

// Listing is the full storefront view for one search string
type Listing struct {
	SearchState
	ResetDisabled bool            `json:"resetDisabled"`
	TagGroups     []TagGroupState `json:"tagGroups"`
	Items         []ListingItem   `json:"items"`
	Total         int             `json:"total"`
}
