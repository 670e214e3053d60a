package repository

import (
	"context"
	"encoding/json"
	"log"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

// SettingsRepository persists the settings singleton document. Unlike the
// collection documents, it never surfaces corruption: an unset or undecodable
// payload silently falls back to the built-in default.

type SettingsRepository struct {
	store DocumentStore
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(store DocumentStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Get(ctx context.Context) (entities.SystemSettings, error) {
	payload, found, err := r.store.Get(ctx, DocumentSettings)
	if err != nil {
		return entities.SystemSettings{}, err
	}
	if !found {
		return entities.DefaultSystemSettings(), nil
	}

	var settings entities.SystemSettings
	if err := json.Unmarshal(payload, &settings); err != nil {
		log.Printf("[storage][settings] undecodable settings payload, using defaults err=%v", err)
		return entities.DefaultSystemSettings(), nil
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings entities.SystemSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, DocumentSettings, payload)
}
