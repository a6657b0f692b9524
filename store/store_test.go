package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	state := New(persistence.NewMemoryAdapter())
	state.Load(context.Background())

	assert.Len(t, state.Catalog.List(), len(DefaultProducts()))
	assert.Equal(t, DefaultSettings(), state.Site.Settings())
	assert.Len(t, state.Site.Policies(), len(DefaultPolicies()))
	assert.Empty(t, state.Ledger.List())
}

func TestLoadPrefersStoredSnapshots(t *testing.T) {
	adapter := persistence.NewMemoryAdapter()
	products := []models.Product{{ID: "x", Name: "Stored", Price: 10, StockStatus: models.StockInStock}}
	blob, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, adapter.Save(context.Background(), persistence.KeyCatalog, blob))

	state := New(adapter)
	state.Load(context.Background())

	list := state.Catalog.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Stored", list[0].Name)
}

func TestLoadRecoversFromCorruptSnapshot(t *testing.T) {
	adapter := persistence.NewMemoryAdapter()
	require.NoError(t, adapter.Save(context.Background(), persistence.KeyCatalog, []byte("{not json")))

	state := New(adapter)
	state.Load(context.Background())

	assert.Len(t, state.Catalog.List(), len(DefaultProducts()))
}

func TestMutationsPersistAsync(t *testing.T) {
	adapter := persistence.NewMemoryAdapter()
	state := New(adapter)
	state.Load(context.Background())

	state.Catalog.SetPrice("1", "300")

	assert.Eventually(t, func() bool {
		blob, err := adapter.Load(context.Background(), persistence.KeyCatalog)
		if err != nil {
			return false
		}
		var products []models.Product
		if json.Unmarshal(blob, &products) != nil {
			return false
		}
		for _, p := range products {
			if p.ID == "1" {
				return p.Price == 300
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond, "snapshot should land shortly after the mutation")
}

// gatedAdapter stalls the first Save on a channel so a later mutation's write
// would, without per-key serialization, complete first and then be clobbered.
type gatedAdapter struct {
	inner *persistence.MemoryAdapter

	mu        sync.Mutex
	saves     int
	gate      chan struct{}
	firstDone chan struct{}
}

func newGatedAdapter() *gatedAdapter {
	return &gatedAdapter{
		inner:     persistence.NewMemoryAdapter(),
		gate:      make(chan struct{}),
		firstDone: make(chan struct{}),
	}
}

func (a *gatedAdapter) Load(ctx context.Context, key string) ([]byte, error) {
	return a.inner.Load(ctx, key)
}

func (a *gatedAdapter) Save(ctx context.Context, key string, value []byte) error {
	a.mu.Lock()
	a.saves++
	first := a.saves == 1
	a.mu.Unlock()

	if first {
		<-a.gate
		defer close(a.firstDone)
	}
	return a.inner.Save(ctx, key, value)
}

func TestSnapshotWritesNeverReorder(t *testing.T) {
	adapter := newGatedAdapter()
	catalog := NewCatalogStore(adapter)

	// First write stalls at the gate while two more edits land in memory.
	catalog.Replace([]models.Product{{ID: "1", Name: "Noir Éclat", Price: 100, StockStatus: models.StockInStock}})
	catalog.SetPrice("1", "300")
	catalog.SetPrice("1", "400")

	close(adapter.gate)
	<-adapter.firstDone

	// The stalled early snapshot must not end up as the durable one.
	assert.Eventually(t, func() bool {
		blob, err := adapter.inner.Load(context.Background(), persistence.KeyCatalog)
		if err != nil {
			return false
		}
		var products []models.Product
		if json.Unmarshal(blob, &products) != nil {
			return false
		}
		return len(products) == 1 && products[0].Price == 400
	}, 2*time.Second, 10*time.Millisecond, "durable snapshot must reflect the latest mutation")
}

func TestExportRoundTripsThroughImport(t *testing.T) {
	state := newTestState(t)
	cart := state.Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))
	_, err := cart.Finalize(state.Ledger)
	require.NoError(t, err)

	bundle := state.Export()
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	restored := New(persistence.NewMemoryAdapter())
	require.NoError(t, restored.Import(raw))

	assert.Equal(t, state.Catalog.List(), restored.Catalog.List())
	assert.Equal(t, state.Site.Settings(), restored.Site.Settings())
	assert.Equal(t, state.Ledger.List(), restored.Ledger.List())
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	state := newTestState(t)
	before := state.Catalog.List()

	assert.Error(t, state.Import([]byte("{broken")))
	assert.Equal(t, before, state.Catalog.List())
}

func TestImportIsAllOrNothing(t *testing.T) {
	state := newTestState(t)
	before := state.Catalog.List()
	beforeSettings := state.Site.Settings()

	bundle := models.BackupBundle{
		Products: []models.Product{{ID: "ok", Name: "Fine", Price: 10}},
		Orders:   []models.Order{{ID: "o1", TrackingNumber: "MNT-X-0001", Status: "Teleported"}},
	}
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	assert.Error(t, state.Import(raw), "unknown order status must fail validation")
	assert.Equal(t, before, state.Catalog.List(), "a rejected bundle must not touch the catalog")
	assert.Equal(t, beforeSettings, state.Site.Settings())
}

func TestImportRejectsIncompleteProducts(t *testing.T) {
	state := newTestState(t)

	bundle := models.BackupBundle{Products: []models.Product{{Name: "No ID", Price: 10}}}
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	assert.Error(t, state.Import(raw))
}
