package store

import (
	"regexp"
	"testing"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingPattern = regexp.MustCompile(`^MNT-[A-Z0-9]+-[A-Z0-9]{4}$`)

func TestBeginShippingRequiresNonEmptyCart(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")

	assert.ErrorIs(t, cart.BeginShipping(), ErrEmptyCart)

	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	assert.Equal(t, StepShipping, cart.CheckoutState().Step)
}

func TestBeginShippingRejectedMidFlow(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())

	assert.ErrorIs(t, cart.BeginShipping(), ErrWrongStep)
}

func TestBackToCartOnlyFromShipping(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())

	cart.BackToCart()
	assert.Equal(t, StepCart, cart.CheckoutState().Step)

	// Not on shipping anymore, nothing happens.
	cart.BackToCart()
	assert.Equal(t, StepCart, cart.CheckoutState().Step)
}

func TestSubmitShippingValidation(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")

	assert.ErrorIs(t, cart.SubmitShipping("Élise", "12 Rue de la Paix"), ErrWrongStep)

	require.NoError(t, cart.BeginShipping())
	assert.ErrorIs(t, cart.SubmitShipping("", "12 Rue de la Paix"), ErrMissingField)
	assert.ErrorIs(t, cart.SubmitShipping("Élise", ""), ErrMissingField)

	require.NoError(t, cart.SubmitShipping("Élise", "12 Rue de la Paix"))
	assert.Equal(t, StepProcessing, cart.CheckoutState().Step)
}

func TestFinalizePlacesOrder(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise Laurent", "12 Rue de la Paix, Paris"))

	order, err := cart.Finalize(state.Ledger)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, trackingPattern, order.TrackingNumber)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "Élise Laurent", order.CustomerName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Noir Éclat", order.Items[0].Name)
	assert.InDelta(t, 245.0, order.Subtotal, 0.001)
	assert.Zero(t, order.Shipping)
	assert.InDelta(t, order.Subtotal, order.Total, 0.001)

	// Bag cleared, sequencer on success, order immediately trackable.
	assert.Empty(t, cart.Lines())
	assert.Equal(t, StepSuccess, cart.CheckoutState().Step)
	assert.Equal(t, order.TrackingNumber, cart.CheckoutState().TrackingNumber)

	found, err := state.Ledger.FindByTrackingNumber(order.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestFinalizeRequiresProcessing(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")

	_, err := cart.Finalize(state.Ledger)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestFinalizeSnapshotsPricesAtPlacement(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))

	order, err := cart.Finalize(state.Ledger)
	require.NoError(t, err)

	// A later price edit must not rewrite history.
	state.Catalog.SetPrice("1", "999")
	stored, err := state.Ledger.Get(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 245.0, stored.Items[0].Price, 0.001)
	assert.InDelta(t, 245.0, stored.Total, 0.001)
}

func TestAbandonProcessingReturnsToShipping(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))

	cart.AbandonProcessing()
	assert.Equal(t, StepShipping, cart.CheckoutState().Step)
	assert.Len(t, cart.Lines(), 1)
	assert.Empty(t, state.Ledger.List())

	// Outside processing it does nothing.
	cart.AbandonProcessing()
	assert.Equal(t, StepShipping, cart.CheckoutState().Step)
}

func TestCartFrozenWhileProcessing(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))
	require.False(t, cart.Editable())

	// The sequencer owns the lines between submit and finalize; edits bounce.
	cart.AddItem("2")
	cart.SetQuantity("1", 7)
	cart.RemoveItem("1")
	cart.Clear()

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)

	order, err := cart.Finalize(state.Ledger)
	require.NoError(t, err)
	assert.InDelta(t, 245.0, order.Subtotal, 0.001)

	// Back on success the bag takes edits again.
	assert.True(t, cart.Editable())
	cart.AddItem("2")
	assert.Len(t, cart.Lines(), 1)
}

func TestCartEditableAgainAfterAbandon(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))

	cart.AbandonProcessing()
	require.True(t, cart.Editable())
	cart.SetQuantity("1", 3)
	assert.Equal(t, 3, cart.Lines()[0].Quantity)
}

func TestNewCheckoutAfterSuccess(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))
	_, err := cart.Finalize(state.Ledger)
	require.NoError(t, err)

	// A fresh bag can start a second checkout from the success step.
	cart.AddItem("2")
	require.NoError(t, cart.BeginShipping())
	assert.Equal(t, StepShipping, cart.CheckoutState().Step)
	assert.Empty(t, cart.CheckoutState().TrackingNumber)
}
