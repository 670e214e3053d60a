package repository

import (
	"context"
	"log"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

// ClientRepository persists the "clients" collection as one whole document.
//
// First access seeds the bootstrap client, mirroring the jobs seed: whichever
// collection is read first writes the record, the other one finds it and
// leaves it alone. Seeding on both sides is deliberate: a login against a
// fresh store reads only the clients document, so without its own seed the
// bootstrap client would not exist until something listed the jobs.

type ClientRepository struct {
	store DocumentStore
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store DocumentStore) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]entities.Client, error) {
	payload, found, err := r.store.Get(ctx, DocumentClients)
	if err != nil {
		return nil, err
	}
	if !found {
		clients := []entities.Client{seedClient()}
		if err := putCollection(ctx, r.store, DocumentClients, clients); err != nil {
			return nil, err
		}
		log.Printf("[storage][clients] seeded bootstrap client")
		return clients, nil
	}
	return decodeCollection[entities.Client](DocumentClients, payload)
}

func (r *ClientRepository) Save(ctx context.Context, client entities.Client) error {
	clients, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
			replaced = true
			break
		}
	}
	if !replaced {
		clients = append(clients, client)
	}

	return putCollection(ctx, r.store, DocumentClients, clients)
}
