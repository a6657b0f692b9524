package store

import (
	"log"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/google/uuid"
)

// CatalogStore owns the canonical product list. Browsing views and the admin
// console read it; only the admin console writes it. Every mutation pushes a
// fresh snapshot to the substrate.
type CatalogStore struct {
	mu       sync.RWMutex
	products []models.Product
	writer   *snapshotWriter
}

func NewCatalogStore(adapter persistence.Adapter) *CatalogStore {
	return &CatalogStore{writer: newSnapshotWriter(adapter, persistence.KeyCatalog)}
}

// List returns a copy of the full catalog in insertion order.
func (s *CatalogStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Featured returns the products flagged for the home page masterpieces grid.
func (s *CatalogStore) Featured() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory filters case-insensitively; an empty category returns everything.
func (s *CatalogStore) ByCategory(category string) []models.Product {
	if category == "" {
		return s.List()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// SetPrice parses the raw admin input and updates the product's list price.
// Anything that does not parse to a finite number is silently discarded: no
// mutation, no error. That is the console's observed contract for price edits.
func (s *CatalogStore) SetPrice(id, raw string) {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		log.Printf("[catalog] ignoring malformed price %q for product %s", raw, id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Price = val
			s.persistLocked()
			return
		}
	}
}

// SetStockStatus updates availability. Status validity is the binding layer's
// job; the store trusts its callers.
func (s *CatalogStore) SetStockStatus(id string, status models.StockStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].StockStatus = status
			s.persistLocked()
			return
		}
	}
}

// Upsert replaces the product with the same ID wholesale, or appends it. A
// product arriving without an ID is assigned a fresh time-ordered one.
func (s *CatalogStore) Upsert(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}
	if p.StockStatus == "" {
		p.StockStatus = models.StockInStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.persistLocked()
			return p
		}
	}
	s.products = append(s.products, p)
	s.persistLocked()
	return p
}

// Delete removes the product; calling it with an unknown ID is a no-op.
func (s *CatalogStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Replace swaps the entire catalog (boot load, seed, backup import).
func (s *CatalogStore) Replace(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]models.Product, len(products))
	copy(s.products, products)
	s.persistLocked()
}

func (s *CatalogStore) persistLocked() {
	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	s.writer.write(snapshot)
}
