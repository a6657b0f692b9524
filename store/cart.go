package store

import (
	"sync"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
)

// Cart is one visitor's bag plus their checkout sequencer. Carts live only in
// memory: losing the process abandons every in-progress checkout, which is the
// same deal the original's browser session offered.
//
// Invariants: at most one line per product ID, every quantity >= 1.
type Cart struct {
	mu       sync.Mutex
	lines    []models.CartLine
	checkout Checkout
	catalog  *CatalogStore
}

// CartManager hands out per-session carts keyed by the cart_session cookie.
type CartManager struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	catalog *CatalogStore
}

func NewCartManager(catalog *CatalogStore) *CartManager {
	return &CartManager{
		carts:   make(map[string]*Cart),
		catalog: catalog,
	}
}

// Session returns the cart for the given session ID, creating it on first use.
func (m *CartManager) Session(id string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[id]
	if !ok {
		cart = &Cart{catalog: m.catalog, checkout: Checkout{Step: StepCart}}
		m.carts[id] = cart
	}
	return cart
}

// editableLocked gates line mutations on the sequencer position. Once the
// session enters processing the sequencer owns the lines until Finalize clears
// them; nothing else may interleave with that window.
func (c *Cart) editableLocked() bool {
	return c.checkout.Step != StepProcessing
}

// Editable reports whether the bag currently accepts line mutations.
func (c *Cart) Editable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editableLocked()
}

// AddItem inserts a new line with quantity 1 or bumps an existing line by 1.
// Stock status is deliberately not checked here: the storefront disables the
// button for sold-out bottles, but the aggregate itself never refuses.
func (c *Cart) AddItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{ProductID: productID, Quantity: 1})
}

// SetQuantity replaces a line's quantity. Values below 1 are a no-op — the
// minus button stops at one, and removal is an explicit separate action.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line unconditionally; unknown IDs are a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the bag.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return
	}
	c.lines = nil
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal prices every line against the live catalog, using the discount
// price when one is set. It is a pure function of current state: cart lines
// hold no cached prices, so a catalog edit is reflected immediately. Lines
// whose product vanished from the catalog contribute nothing.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() float64 {
	var sum float64
	for _, line := range c.lines {
		if p, ok := c.catalog.Get(line.ProductID); ok {
			sum += p.EffectivePrice() * float64(line.Quantity)
		}
	}
	return sum
}

// View joins the lines with their live catalog products for display.
func (c *Cart) View() models.CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := models.CartView{Lines: []models.CartLineView{}}
	for _, line := range c.lines {
		p, ok := c.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		lineTotal := p.EffectivePrice() * float64(line.Quantity)
		view.Lines = append(view.Lines, models.CartLineView{
			Product:   p,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal += lineTotal
	}
	return view
}
