package persistence

import (
	"context"
	"sync"
)

// MemoryAdapter holds snapshots in process memory. Used by tests and by
// PERSISTENCE_DRIVER=memory for dependency-free local runs; nothing survives a
// restart, which is exactly the original's behavior with storage disabled.
type MemoryAdapter struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{blobs: make(map[string][]byte)}
}

func (a *MemoryAdapter) Load(_ context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	blob, ok := a.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (a *MemoryAdapter) Save(_ context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	blob := make([]byte, len(value))
	copy(blob, value)
	a.blobs[key] = blob
	return nil
}
