package models

// ═══════════════════════════════════════════════════════════
// Catalog Models
// ═══════════════════════════════════════════════════════════

// StockStatus is the display-level availability of a product.
type StockStatus string

const (
	StockInStock  StockStatus = "In Stock"
	StockLimited  StockStatus = "Limited Stock"
	StockOutOfStk StockStatus = "Out of Stock"
)

// Valid reports whether s is one of the three known statuses.
func (s StockStatus) Valid() bool {
	switch s {
	case StockInStock, StockLimited, StockOutOfStk:
		return true
	}
	return false
}

// FragranceNotes groups scent notes into the three classic tiers.
type FragranceNotes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// Review is carried on products for display; the storefront never writes reviews.
type Review struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	Moderated bool   `json:"moderated"`
}

// SEOMeta is shared by products and policy pages.
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// Product is the canonical catalog entry. The Catalog Store owns the only
// authoritative copy; everything else works on snapshots.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name" binding:"required"`
	Brand         string         `json:"brand"`
	Price         float64        `json:"price" binding:"required,min=0"`
	DiscountPrice *float64       `json:"discount_price,omitempty"`
	Category      string         `json:"category"`
	StockStatus   StockStatus    `json:"stock_status"`
	Images        []string       `json:"images"`
	Notes         FragranceNotes `json:"notes"`
	Description   string         `json:"description"`
	Reviews       []Review       `json:"reviews"`
	Featured      bool           `json:"featured"`
	SEO           SEOMeta        `json:"seo"`
}

// EffectivePrice returns the discount price when one is set, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// SetPriceRequest carries the raw text of the admin price input. Parsing (and
// silently discarding garbage) is the Catalog Store's job, not the binding layer's.
type SetPriceRequest struct {
	Price string `json:"price" binding:"required"`
}

type SetStockStatusRequest struct {
	Status StockStatus `json:"status" binding:"required,oneof='In Stock' 'Limited Stock' 'Out of Stock'"`
}
