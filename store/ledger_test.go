package store

import (
	"testing"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id, tracking string) models.Order {
	return models.Order{
		ID:             id,
		TrackingNumber: tracking,
		Status:         models.OrderPending,
		CustomerName:   "Élise",
		Address:        "Paris",
		Total:          100,
		Subtotal:       100,
	}
}

func TestLedgerAppendsNewestFirst(t *testing.T) {
	ledger := NewOrderLedger(persistence.NewMemoryAdapter())

	ledger.Append(testOrder("a", "MNT-AAA-0001"))
	ledger.Append(testOrder("b", "MNT-BBB-0002"))

	orders := ledger.List()
	require.Len(t, orders, 2)
	assert.Equal(t, "b", orders[0].ID)
	assert.Equal(t, "a", orders[1].ID)
}

func TestFindByTrackingNumberNormalizesInput(t *testing.T) {
	ledger := NewOrderLedger(persistence.NewMemoryAdapter())
	ledger.Append(testOrder("a", "MNT-LXK2A9-7F3Q"))

	for _, query := range []string{"MNT-LXK2A9-7F3Q", "mnt-lxk2a9-7f3q", "  MNT-LXK2A9-7F3Q  "} {
		order, err := ledger.FindByTrackingNumber(query)
		require.NoError(t, err, "query %q", query)
		assert.Equal(t, "a", order.ID)
	}

	_, err := ledger.FindByTrackingNumber("MNT-LXK2A9")
	assert.ErrorIs(t, err, ErrOrderNotFound, "partial codes must not match")
}

func TestSetStatus(t *testing.T) {
	ledger := NewOrderLedger(persistence.NewMemoryAdapter())
	ledger.Append(testOrder("a", "MNT-AAA-0001"))

	order, err := ledger.SetStatus("a", models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, order.Status)

	stored, err := ledger.Get("a")
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, stored.Status)

	_, err = ledger.SetStatus("nope", models.OrderShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestLedgerListReturnsCopy(t *testing.T) {
	ledger := NewOrderLedger(persistence.NewMemoryAdapter())
	ledger.Append(testOrder("a", "MNT-AAA-0001"))

	orders := ledger.List()
	orders[0].Status = models.OrderCancelled

	stored, err := ledger.Get("a")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, stored.Status)
}
