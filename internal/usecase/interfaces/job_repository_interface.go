package interfaces

import (
	"context"

	"funilaria_autocolor/internal/domain/entities"
)

// IJobRepository abstracts persistence for the "jobs" collection document.
//
// The service must be able to:
//   - read the whole collection in store order (seeding it on first access)
//   - upsert one job by id, replacing in place and preserving its position
//
// Jobs have no delete path. Save rewrites the entire collection document, so a
// read-modify-save sequence is last-writer-wins.

type IJobRepository interface {
	GetAll(ctx context.Context) ([]entities.Job, error)
	Save(ctx context.Context, job entities.Job) error
}
