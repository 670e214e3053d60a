package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

var ErrInvalidSettingsInput = errors.New("invalid settings input")

// ISettingsUseCase reads and updates the global settings singleton.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.SystemSettings, error)
	Update(ctx context.Context, name, primaryColor string) (entities.SystemSettings, error)
}

type SettingsUseCase struct {
	settings interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(settings interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.SystemSettings, error) {
	return u.settings.Get(ctx)
}

func (u *SettingsUseCase) Update(ctx context.Context, name, primaryColor string) (entities.SystemSettings, error) {
	name = strings.TrimSpace(name)
	primaryColor = strings.TrimSpace(primaryColor)
	if name == "" || primaryColor == "" {
		return entities.SystemSettings{}, ErrInvalidSettingsInput
	}

	settings := entities.SystemSettings{Name: name, PrimaryColor: primaryColor}
	if err := u.settings.Save(ctx, settings); err != nil {
		return entities.SystemSettings{}, err
	}

	log.Printf("[settings][usecase] settings updated name=%q", name)
	return settings, nil
}
