package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminInput = errors.New("invalid admin input")
	ErrInvalidAdminID    = errors.New("invalid admin id")
)

// IAdminUseCase is the superadmin-facing management of workshop logins.
// Username uniqueness is not enforced here; the login scan simply matches the
// first record.

type IAdminUseCase interface {
	List(ctx context.Context) ([]entities.AdminUser, error)
	Create(ctx context.Context, name, username, password string) (entities.AdminUser, error)
	Delete(ctx context.Context, id string) error
}

type AdminUseCase struct {
	admins interfaces.IAdminRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(admins interfaces.IAdminRepository) *AdminUseCase {
	return &AdminUseCase{admins: admins}
}

func (u *AdminUseCase) List(ctx context.Context) ([]entities.AdminUser, error) {
	return u.admins.GetAll(ctx)
}

func (u *AdminUseCase) Create(ctx context.Context, name, username, password string) (entities.AdminUser, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	if name == "" || username == "" || password == "" {
		return entities.AdminUser{}, ErrInvalidAdminInput
	}

	admin := entities.AdminUser{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
		Password: password,
	}
	if err := u.admins.Save(ctx, admin); err != nil {
		return entities.AdminUser{}, err
	}

	log.Printf("[admin][usecase] admin created admin_id=%s", admin.ID)
	return admin, nil
}

func (u *AdminUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAdminID
	}
	if err := u.admins.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[admin][usecase] admin deleted admin_id=%s", id)
	return nil
}
