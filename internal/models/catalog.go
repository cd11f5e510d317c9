package models

// Category groups products in the menu editor. The id is derived from the
// name at creation time (lowercased, whitespace runs replaced by hyphens)
// and never changes afterwards.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IconID string `json:"icon_id"`
}

// categoryIcons is the fixed set of icon identifiers the menu editor offers.
var categoryIcons = map[string]struct{}{
	"pizza":     {},
	"utensils":  {},
	"wine":      {},
	"ice-cream": {},
	"coffee":    {},
	"salad":     {},
	"fish":      {},
	"beef":      {},
	"cake":      {},
	"cookie":    {},
	"soup":      {},
	"plus":      {},
}

// ValidIcon reports whether iconID is one of the fixed category icons.
func ValidIcon(iconID string) bool {
	_, ok := categoryIcons[iconID]
	return ok
}

// Product is a menu item. Prices are stored as integer centavos; formatting
// into "R$ 45,00" happens only at the response boundary.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	ImageRef    string `json:"image_ref"`
	Available   bool   `json:"available"`
	CategoryID  string `json:"category_id"`
}
