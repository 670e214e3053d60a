package interfaces

import (
	"context"

	"funilaria_autocolor/internal/domain/entities"
)

// INarrationGateway abstracts the external AI text/image collaborator.
//
// Both calls fold failure into their return value: they always produce usable
// text (model output or a deterministic fallback) and never return an error.
// Retrying, caching and rate limiting are explicitly the collaborator's
// problem, not the core's.
type INarrationGateway interface {
	// DescribeDamage returns a short free-text damage description for an
	// opaque encoded-image reference (data URI or URL).
	DescribeDamage(ctx context.Context, imageRef string) string

	// ComposeStatusMessage returns a client-facing notification for the job
	// snapshot, optionally mentioning the latest photo.
	ComposeStatusMessage(ctx context.Context, job entities.Job, latestPhoto *entities.Photo) string
}
