package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdapterRoundTrip(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	_, err := adapter.Load(ctx, KeyCatalog)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, adapter.Save(ctx, KeyCatalog, []byte(`[{"id":"1"}]`)))

	blob, err := adapter.Load(ctx, KeyCatalog)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(blob))
}

func TestMemoryAdapterCopiesBlobs(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	in := []byte("original")
	require.NoError(t, adapter.Save(ctx, KeySettings, in))
	in[0] = 'X'

	blob, err := adapter.Load(ctx, KeySettings)
	require.NoError(t, err)
	assert.Equal(t, "original", string(blob))

	blob[0] = 'Y'
	again, err := adapter.Load(ctx, KeySettings)
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}
