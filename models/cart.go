package models

// CartLine is one product-and-quantity entry in the visitor's bag.
// Invariants (enforced by the Cart Aggregate): at most one line per product
// identifier, and Quantity >= 1 always.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartLineView is a cart line joined with its live catalog product for display.
// LineTotal uses the product's current effective price; cart lines reference the
// catalog rather than freezing prices (prices freeze only at checkout).
type CartLineView struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Lines    []CartLineView `json:"lines"`
	Subtotal float64        `json:"subtotal"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SetCartQuantityRequest uses a pointer so zero is presence-checked like any
// other value: 0 and -3 both reach the aggregate and no-op there, instead of 0
// bouncing off the binding layer.
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ShippingDetailsRequest moves the sequencer from Shipping to Processing. Both
// fields are required here at the binding edge; the sequencer itself assumes
// its preconditions hold.
type ShippingDetailsRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// CheckoutHandoff is the pre-filled WhatsApp dispatch for a finalized order.
type CheckoutHandoff struct {
	TrackingNumber string `json:"tracking_number"`
	Message        string `json:"message"`
	URL            string `json:"url"`
}
