package interfaces

import (
	"context"

	"funilaria_autocolor/internal/domain/entities"
)

// IClientRepository abstracts persistence for the "clients" collection
// document. Clients are never deleted.

type IClientRepository interface {
	GetAll(ctx context.Context) ([]entities.Client, error)
	Save(ctx context.Context, client entities.Client) error
}
