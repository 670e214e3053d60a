package interfaces

import (
	"context"

	"funilaria_autocolor/internal/domain/entities"
)

// IAdminRepository abstracts persistence for the "admins" collection document.
// Delete is idempotent: removing an id that is not present is a no-op, not an
// error.

type IAdminRepository interface {
	GetAll(ctx context.Context) ([]entities.AdminUser, error)
	Save(ctx context.Context, admin entities.AdminUser) error
	Delete(ctx context.Context, id string) error
}
