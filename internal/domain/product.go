package domain

// Product represents a catalog entry as delivered by the payments provider.
// Optional provider fields are pointers or nil slices; none is assumed present.
type Product struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Images       []string `json:"images,omitempty" yaml:"images,omitempty"`
	DefaultPrice *Price   `json:"default_price,omitempty" yaml:"default_price,omitempty"`
}

// Price represents a provider price object
type Price struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	UnitAmount *int64 `json:"unit_amount,omitempty" yaml:"unit_amount,omitempty"` // minor currency units
	Currency   string `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// DescriptionText returns the description or "" when absent
func (p Product) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// UnitAmount returns the default price amount and whether one is present
func (p Product) UnitAmount() (int64, bool) {
	if p.DefaultPrice == nil || p.DefaultPrice.UnitAmount == nil {
		return 0, false
	}
	return *p.DefaultPrice.UnitAmount, true
}

// FirstImage returns the first image URL, or nil when the product has none
func (p Product) FirstImage() *string {
	if len(p.Images) == 0 {
		return nil
	}
	url := p.Images[0]
	return &url
}

// TagGroup is a labelled row of canned search tags
type TagGroup struct {
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
}

// Default tag rows shown above the product list
var (
	PositionTags = []string{"Electrician", "Plumber", "Contractor", "HVAC"}
	StateTags    = []string{"OR", "WA", "CA", "TX", "FL", "NY"}
)

// DefaultTagGroups returns the position and state rows
func DefaultTagGroups() []TagGroup {
	return []TagGroup{
		{Label: "Step 1: Choose position:", Tags: append([]string(nil), PositionTags...)},
		{Label: "Step 2: Choose state:", Tags: append([]string(nil), StateTags...)},
	}
}
