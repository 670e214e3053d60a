package repository

import (
	"context"
	"log"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

// AdminRepository persists the "admins" collection as one whole document.
// First access seeds the default workshop admin when the document has never
// been written.

type AdminRepository struct {
	store DocumentStore
}

var _ interfaces.IAdminRepository = (*AdminRepository)(nil)

func NewAdminRepository(store DocumentStore) *AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) GetAll(ctx context.Context) ([]entities.AdminUser, error) {
	payload, found, err := r.store.Get(ctx, DocumentAdmins)
	if err != nil {
		return nil, err
	}
	if !found {
		admins := seedAdmins()
		if err := putCollection(ctx, r.store, DocumentAdmins, admins); err != nil {
			return nil, err
		}
		log.Printf("[storage][admins] seeded default admin user")
		return admins, nil
	}
	return decodeCollection[entities.AdminUser](DocumentAdmins, payload)
}

func (r *AdminRepository) Save(ctx context.Context, admin entities.AdminUser) error {
	admins, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range admins {
		if admins[i].ID == admin.ID {
			admins[i] = admin
			replaced = true
			break
		}
	}
	if !replaced {
		admins = append(admins, admin)
	}

	return putCollection(ctx, r.store, DocumentAdmins, admins)
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	admins, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := admins[:0]
	for _, a := range admins {
		if a.ID != id {
			kept = append(kept, a)
		}
	}

	// Absent id: the filtered collection equals the original and the write is
	// a harmless overwrite, keeping delete idempotent.
	return putCollection(ctx, r.store, DocumentAdmins, kept)
}
