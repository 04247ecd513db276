package snapshot

import (
	"context"
	"testing"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open("snapshots", vfs.NewMem())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_GetPut(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	blob, err := store.Get(ctx, "aapl_orders_snap_2019-01-30T14:30:00")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, store.Put(ctx, "aapl_orders_snap_2019-01-30T14:30:00", []byte{1, 2, 3}))
	require.NoError(t, store.Put(ctx, "aapl_orders_snap_2019-01-30T14:30:00", []byte{4}))

	blob, err = store.Get(ctx, "aapl_orders_snap_2019-01-30T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, blob)
}

func TestStore_Keys(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, key := range []string{
		"aapl_orders_snap_2019-01-30T15:00:00",
		"aapl_orders_snap_2019-01-30T09:45:00",
		"aapl_orders_snap_2019-01-31T09:30:00",
		"aaplx_orders_snap_2019-01-30T10:00:00",
	} {
		require.NoError(t, store.Put(ctx, key, []byte{0}))
	}

	keys, err := store.Keys(ctx, "aapl_orders_snap_2019-01-30")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"aapl_orders_snap_2019-01-30T09:45:00",
		"aapl_orders_snap_2019-01-30T15:00:00",
	}, keys)

	keys, err = store.Keys(ctx, "msft_orders_snap_")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestUpperBound(t *testing.T) {
	assert.Equal(t, []byte("ab"), upperBound([]byte("aa")))
	assert.Equal(t, []byte("b"), upperBound([]byte{'a', 0xff}))
	assert.Nil(t, upperBound([]byte{0xff, 0xff}))
}
