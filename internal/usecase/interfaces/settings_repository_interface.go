package interfaces

import (
	"context"

	"funilaria_autocolor/internal/domain/entities"
)

// ISettingsRepository abstracts the settings singleton document. Get never
// fails with a domain error: an unset (or undecodable) document yields the
// built-in default.

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.SystemSettings, error)
	Save(ctx context.Context, settings entities.SystemSettings) error
}
