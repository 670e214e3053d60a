package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryDocumentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key reports not found", func(t *testing.T) {
		store := NewMemoryDocumentStore()

		payload, found, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, payload)
	})

	t.Run("empty payload is still found", func(t *testing.T) {
		store := NewMemoryDocumentStore()

		require.NoError(t, store.Put(ctx, "doc", []byte("[]")))
		payload, found, err := store.Get(ctx, "doc")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte("[]"), payload)
	})

	t.Run("returned bytes are isolated from the stored copy", func(t *testing.T) {
		store := NewMemoryDocumentStore()

		require.NoError(t, store.Put(ctx, "doc", []byte("abc")))
		payload, _, err := store.Get(ctx, "doc")
		require.NoError(t, err)
		payload[0] = 'z'

		again, _, err := store.Get(ctx, "doc")
		require.NoError(t, err)
		require.Equal(t, []byte("abc"), again)
	})

	t.Run("delete resets to never-written", func(t *testing.T) {
		store := NewMemoryDocumentStore()

		require.NoError(t, store.Put(ctx, "doc", []byte("[]")))
		require.NoError(t, store.Delete(ctx, "doc"))

		_, found, err := store.Get(ctx, "doc")
		require.NoError(t, err)
		require.False(t, found)

		// Deleting an absent key is fine too.
		require.NoError(t, store.Delete(ctx, "doc"))
	})
}
