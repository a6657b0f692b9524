package store

import (
	"errors"
	"sync"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
)

// ErrOrderNotFound is a lookup miss — reported to the customer as a message,
// never as a failure.
var ErrOrderNotFound = errors.New("ledger: order not found")

// OrderLedger is the historical record of finalized orders, most recent first.
// Index 0 being the newest is relied upon for "last order" displays. Orders
// are never deleted; only their status changes, and only from the console.
type OrderLedger struct {
	mu     sync.RWMutex
	orders []models.Order
	writer *snapshotWriter
}

func NewOrderLedger(adapter persistence.Adapter) *OrderLedger {
	return &OrderLedger{writer: newSnapshotWriter(adapter, persistence.KeyOrders)}
}

// Append puts the order at the front and persists the snapshot.
func (l *OrderLedger) Append(order models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]models.Order{order}, l.orders...)
	l.persistLocked()
}

// FindByTrackingNumber is an exact match after normalizing the query to the
// generated upper-case form. No partial or fuzzy matching.
func (l *OrderLedger) FindByTrackingNumber(code string) (models.Order, error) {
	code = utils.NormalizeTrackingNumber(code)
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.TrackingNumber == code {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (l *OrderLedger) Get(id string) (models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// SetStatus is the console-only status transition.
func (l *OrderLedger) SetStatus(id string, status models.OrderStatus) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			l.persistLocked()
			return l.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// List returns a copy, newest first.
func (l *OrderLedger) List() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Replace swaps the whole ledger (boot load, backup import).
func (l *OrderLedger) Replace(orders []models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = make([]models.Order, len(orders))
	copy(l.orders, orders)
	l.persistLocked()
}

func (l *OrderLedger) persistLocked() {
	snapshot := make([]models.Order, len(l.orders))
	copy(snapshot, l.orders)
	l.writer.write(snapshot)
}
