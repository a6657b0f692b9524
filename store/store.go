// Package store is the commerce state manager behind the Montclairé
// storefront: catalog, per-session carts and checkout, the order ledger, and
// the site settings. Each store owns its snapshot behind a mutex and pushes a
// full copy to the persistence substrate after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
)

// State is the application state container: one instance wired at boot and
// handed to the HTTP layer. Tests build their own with a memory adapter.
type State struct {
	Catalog *CatalogStore
	Carts   *CartManager
	Ledger  *OrderLedger
	Site    *SettingsStore

	adapter persistence.Adapter
}

func New(adapter persistence.Adapter) *State {
	catalog := NewCatalogStore(adapter)
	return &State{
		Catalog: catalog,
		Carts:   NewCartManager(catalog),
		Ledger:  NewOrderLedger(adapter),
		Site:    NewSettingsStore(adapter),
		adapter: adapter,
	}
}

// Load seeds every store from the substrate, falling back to the compiled-in
// defaults when a snapshot is absent or unreadable. Load failures are
// recovered, not reported: the storefront always comes up.
func (s *State) Load(ctx context.Context) {
	var products []models.Product
	if loadSnapshot(ctx, s.adapter, persistence.KeyCatalog, &products) {
		s.Catalog.Replace(products)
	} else {
		s.Catalog.Replace(DefaultProducts())
	}

	var settings models.SiteSettings
	if loadSnapshot(ctx, s.adapter, persistence.KeySettings, &settings) {
		s.Site.ReplaceSettings(settings)
	} else {
		s.Site.ReplaceSettings(DefaultSettings())
	}

	var policies []models.PolicyPage
	if loadSnapshot(ctx, s.adapter, persistence.KeyPolicies, &policies) {
		s.Site.ReplacePolicies(policies)
	} else {
		s.Site.ReplacePolicies(DefaultPolicies())
	}

	var orders []models.Order
	if loadSnapshot(ctx, s.adapter, persistence.KeyOrders, &orders) {
		s.Ledger.Replace(orders)
	}
}

// ═══════════════════════════════════════════════════════════
// Backup Export / Import
// ═══════════════════════════════════════════════════════════

// Export bundles every persisted snapshot into one document.
func (s *State) Export() models.BackupBundle {
	return models.BackupBundle{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Products:   s.Catalog.List(),
		Settings:   s.Site.Settings(),
		Policies:   s.Site.Policies(),
		Orders:     s.Ledger.List(),
	}
}

// Import validates the whole bundle before touching anything, then replaces
// every store. A bundle that fails validation leaves state untouched.
func (s *State) Import(raw []byte) error {
	var bundle models.BackupBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	if err := validateBundle(bundle); err != nil {
		return err
	}

	s.Catalog.Replace(bundle.Products)
	s.Site.ReplaceSettings(bundle.Settings)
	s.Site.ReplacePolicies(bundle.Policies)
	s.Ledger.Replace(bundle.Orders)
	return nil
}

func validateBundle(b models.BackupBundle) error {
	for _, p := range b.Products {
		if p.ID == "" || p.Name == "" {
			return errors.New("invalid backup file: product missing id or name")
		}
		if p.StockStatus != "" && !p.StockStatus.Valid() {
			return fmt.Errorf("invalid backup file: unknown stock status %q", p.StockStatus)
		}
	}
	for _, o := range b.Orders {
		if o.ID == "" || o.TrackingNumber == "" {
			return errors.New("invalid backup file: order missing id or tracking number")
		}
		if !o.Status.Valid() {
			return fmt.Errorf("invalid backup file: unknown order status %q", o.Status)
		}
	}
	for _, p := range b.Policies {
		if p.ID == "" {
			return errors.New("invalid backup file: policy missing id")
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Persistence helpers
// ═══════════════════════════════════════════════════════════

// snapshotWriter owns all saves for one key. Mutations never wait on
// durability, but writes for a key go out one at a time, newest snapshot wins:
// when saves back up, intermediate snapshots are coalesced away, and a slow
// early write can never land after (and clobber) a later one.
type snapshotWriter struct {
	adapter persistence.Adapter
	key     string

	mu      sync.Mutex
	pending []byte
	active  bool
}

func newSnapshotWriter(adapter persistence.Adapter, key string) *snapshotWriter {
	return &snapshotWriter{adapter: adapter, key: key}
}

// write encodes the snapshot synchronously and hands it to the drain loop.
func (w *snapshotWriter) write(snapshot any) {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("[persist] failed to encode %s: %v", w.key, err)
		return
	}
	w.mu.Lock()
	w.pending = blob
	if w.active {
		w.mu.Unlock()
		return
	}
	w.active = true
	w.mu.Unlock()
	go w.drain()
}

func (w *snapshotWriter) drain() {
	for {
		w.mu.Lock()
		blob := w.pending
		w.pending = nil
		if blob == nil {
			w.active = false
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := w.adapter.Save(ctx, w.key, blob)
		cancel()
		if err != nil {
			log.Printf("[persist] failed to save %s: %v", w.key, err)
		}
	}
}

func loadSnapshot(ctx context.Context, adapter persistence.Adapter, key string, out any) bool {
	blob, err := adapter.Load(ctx, key)
	if errors.Is(err, persistence.ErrNotFound) {
		return false
	}
	if err != nil {
		log.Printf("[persist] failed to load %s, using defaults: %v", key, err)
		return false
	}
	if err := json.Unmarshal(blob, out); err != nil {
		log.Printf("[persist] corrupt snapshot %s, using defaults: %v", key, err)
		return false
	}
	return true
}

// ═══════════════════════════════════════════════════════════
// Global instance (wired once in main, read by the HTTP layer)
// ═══════════════════════════════════════════════════════════

var current *State

func Init(adapter persistence.Adapter) *State {
	current = New(adapter)
	return current
}

func Get() *State {
	return current
}
