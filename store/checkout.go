package store

import (
	"errors"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/google/uuid"
)

// CheckoutStep is the sequencer position. The flow is strictly linear —
// cart → shipping → processing → success — with a single return edge from
// shipping back to cart. One sequencer per session, no concurrent checkouts.
type CheckoutStep string

const (
	StepCart       CheckoutStep = "cart"
	StepShipping   CheckoutStep = "shipping"
	StepProcessing CheckoutStep = "processing"
	StepSuccess    CheckoutStep = "success"
)

// Checkout carries the sequencer state for one session. Nothing here is
// persisted: an order exists only after Finalize, never before, so a lost
// session simply abandons the attempt.
type Checkout struct {
	Step           CheckoutStep `json:"step"`
	Name           string       `json:"name,omitempty"`
	Address        string       `json:"address,omitempty"`
	TrackingNumber string       `json:"tracking_number,omitempty"`
}

// ProcessingMessages are displayed one by one, with deliberate pacing, while
// the sequencer sits in the processing step. The delay is cosmetic theater —
// there is no real work behind it.
var ProcessingMessages = []string{
	"Verifying your selection...",
	"Reserving your bottles...",
	"Preparing your order...",
	"Finalizing the details...",
}

// ProcessingMessageDelay is the pause between two progress messages.
const ProcessingMessageDelay = 900 * time.Millisecond

var (
	ErrEmptyCart    = errors.New("checkout: cart is empty")
	ErrWrongStep    = errors.New("checkout: operation not allowed in current step")
	ErrMissingField = errors.New("checkout: name and address are required")
)

// BeginShipping moves cart → shipping. The only precondition is a non-empty bag.
func (c *Cart) BeginShipping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkout.Step != StepCart && c.checkout.Step != StepSuccess {
		return ErrWrongStep
	}
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}
	c.checkout = Checkout{Step: StepShipping}
	return nil
}

// BackToCart is the single return edge, shipping → cart.
func (c *Cart) BackToCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkout.Step == StepShipping {
		c.checkout = Checkout{Step: StepCart}
	}
}

// SubmitShipping records the contact details and moves shipping → processing.
// The HTTP edge already rejected empty fields; the guard here is the last line.
func (c *Cart) SubmitShipping(name, address string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkout.Step != StepShipping {
		return ErrWrongStep
	}
	if name == "" || address == "" {
		return ErrMissingField
	}
	c.checkout.Step = StepProcessing
	c.checkout.Name = name
	c.checkout.Address = address
	return nil
}

// Finalize is the atomic end of the sequence, processing → success: price the
// bag against the live catalog, snapshot the line items, append a Pending
// order to the ledger, clear the bag, and record the tracking code. Shipping
// is always zero — the courier quote happens over WhatsApp, after the handoff.
func (c *Cart) Finalize(ledger *OrderLedger) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkout.Step != StepProcessing {
		return models.Order{}, ErrWrongStep
	}

	subtotal := c.subtotalLocked()
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		p, ok := c.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			Price:     p.EffectivePrice(),
		})
	}

	order := models.Order{
		ID:             uuid.Must(uuid.NewV7()).String(),
		TrackingNumber: utils.GenerateTrackingNumber(),
		Status:         models.OrderPending,
		CustomerName:   c.checkout.Name,
		Address:        c.checkout.Address,
		Items:          items,
		Subtotal:       subtotal,
		Shipping:       0,
		Total:          subtotal,
		CreatedAt:      time.Now().UTC(),
	}

	ledger.Append(order)

	c.lines = nil
	c.checkout.Step = StepSuccess
	c.checkout.TrackingNumber = order.TrackingNumber
	return order, nil
}

// AbandonProcessing drops a processing attempt back to shipping. Called when
// the client disconnects mid-stream, before Finalize ran: nothing was ordered,
// the bag is intact, and the contact details survive for a resubmit.
func (c *Cart) AbandonProcessing() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkout.Step == StepProcessing {
		c.checkout.Step = StepShipping
	}
}

// CheckoutState returns a copy of the sequencer state for display.
func (c *Cart) CheckoutState() Checkout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkout
}
