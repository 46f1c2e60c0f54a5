package queue_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliate-press/foliate/internal/adapters/queue"
)

func openSQLite(t *testing.T) *queue.SQLiteStore {
	t.Helper()
	store, err := queue.OpenSQLite(filepath.Join(t.TempDir(), "questions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	id, err := store.Add(ctx, "What is a CDN?")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	pending, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, id, pending[0].ID)
	require.Equal(t, "What is a CDN?", pending[0].Text)

	require.NoError(t, store.MarkPublished(ctx, id))

	pending, err = store.Pending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestSQLiteStoreAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	first, err := store.Add(ctx, "What is sharding?")
	require.NoError(t, err)

	second, err := store.Add(ctx, "What is sharding?")
	require.NoError(t, err)
	require.Equal(t, first, second)

	pending, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestSQLiteStoreMarkUnknown(t *testing.T) {
	store := openSQLite(t)
	require.Error(t, store.MarkPublished(context.Background(), "no-such-id"))
}

func TestSQLiteStorePendingOrder(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	_, err := store.Add(ctx, "first")
	require.NoError(t, err)
	_, err = store.Add(ctx, "second")
	require.NoError(t, err)
	_, err = store.Add(ctx, "third")
	require.NoError(t, err)

	pending, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	require.Equal(t, "first", pending[0].Text)
	require.Equal(t, "third", pending[2].Text)
}
