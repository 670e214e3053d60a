package repository

import (
	"context"
	"testing"

	"funilaria_autocolor/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("first read seeds the bootstrap client", func(t *testing.T) {
		store := NewMemoryDocumentStore()
		repo := NewClientRepository(store)

		clients, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		require.Equal(t, "client-1", clients[0].ID)
		require.Equal(t, "joao@email.com", clients[0].Email)
	})

	t.Run("jobs seed finds the client already there", func(t *testing.T) {
		store := NewMemoryDocumentStore()
		clientRepo := NewClientRepository(store)

		_, err := clientRepo.GetAll(ctx)
		require.NoError(t, err)

		_, err = NewJobRepository(store).GetAll(ctx)
		require.NoError(t, err)

		clients, err := clientRepo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
	})

	t.Run("save upserts by id", func(t *testing.T) {
		store := NewMemoryDocumentStore()
		repo := NewClientRepository(store)

		require.NoError(t, repo.Save(ctx, entities.Client{ID: "client-2", Name: "Ana"}))
		require.NoError(t, repo.Save(ctx, entities.Client{ID: "client-1", Name: "João S. Silva", Email: "joao@email.com"}))

		clients, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 2)
		require.Equal(t, "João S. Silva", clients[0].Name)
		require.Equal(t, "client-2", clients[1].ID)
	})
}
