// Package persistence is the opaque key-value substrate the commerce stores
// save their snapshots into. One key per logical store, whole-snapshot writes,
// no partial updates. Saves are fire-and-forget from the caller's point of
// view: a crash between an in-memory mutation and its write is an accepted
// data-loss window.
package persistence

import (
	"context"
	"errors"
)

// Snapshot keys, one per logical store. Carts are deliberately absent: an
// in-progress bag dies with the session, like the original's browser state.
const (
	KeyCatalog  = "montclaire:catalog"
	KeySettings = "montclaire:settings"
	KeyPolicies = "montclaire:policies"
	KeyOrders   = "montclaire:orders"
)

// ErrNotFound is returned by Load when no snapshot exists under the key; the
// caller falls back to the compiled-in defaults.
var ErrNotFound = errors.New("persistence: snapshot not found")

// Adapter is the substrate contract. Implementations must be safe for
// concurrent use.
type Adapter interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
