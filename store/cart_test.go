package store

import (
	"testing"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	state := New(persistence.NewMemoryAdapter())
	state.Catalog.Replace(DefaultProducts())
	state.Site.ReplaceSettings(DefaultSettings())
	state.Site.ReplacePolicies(DefaultPolicies())
	return state
}

func TestSessionReturnsSameCart(t *testing.T) {
	state := newTestState(t)

	a := state.Carts.Session("visitor-a")
	b := state.Carts.Session("visitor-a")
	assert.Same(t, a, b)

	other := state.Carts.Session("visitor-b")
	assert.NotSame(t, a, other)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")

	cart.AddItem("1")
	cart.AddItem("1")

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemAllowsOutOfStock(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")

	p, _ := state.Catalog.Get("5")
	require.Equal(t, models.StockOutOfStk, p.StockStatus)

	cart.AddItem("5")
	assert.Len(t, cart.Lines(), 1)
}

func TestSetQuantityBelowOneIsNoOp(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")

	cart.SetQuantity("1", 0)
	cart.SetQuantity("1", -3)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	cart.SetQuantity("1", 4)
	assert.Equal(t, 4, cart.Lines()[0].Quantity)
}

func TestSetQuantityUnknownLineIsNoOp(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")

	cart.SetQuantity("1", 5)
	assert.Empty(t, cart.Lines())
}

func TestRemoveItem(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	cart.AddItem("2")

	cart.RemoveItem("1")
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].ProductID)

	cart.RemoveItem("missing")
	assert.Len(t, cart.Lines(), 1)
}

func TestSubtotalUsesDiscountPrice(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")

	// Product 2 carries a discount; the effective price wins.
	p, _ := state.Catalog.Get("2")
	require.NotNil(t, p.DiscountPrice)

	cart.AddItem("2")
	cart.SetQuantity("2", 2)
	assert.InDelta(t, *p.DiscountPrice*2, cart.Subtotal(), 0.001)
}

func TestSubtotalTracksLiveCatalogEdits(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")

	before := cart.Subtotal()
	state.Catalog.SetPrice("1", "500")
	assert.NotEqual(t, before, cart.Subtotal())
	assert.InDelta(t, 500.0, cart.Subtotal(), 0.001)
}

func TestSubtotalSkipsVanishedProducts(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	cart.AddItem("2")

	state.Catalog.Delete("1")

	p2, _ := state.Catalog.Get("2")
	assert.InDelta(t, p2.EffectivePrice(), cart.Subtotal(), 0.001)

	view := cart.View()
	assert.Len(t, view.Lines, 1)
}
