package repository

import (
	"context"
	"errors"
)

// Document keys for the four logical collections.
const (
	DocumentJobs     = "autocolor_jobs"
	DocumentClients  = "autocolor_clients"
	DocumentAdmins   = "autocolor_admins"
	DocumentSettings = "autocolor_settings"
)

// ErrStorageCorrupt marks a stored payload that no longer decodes to the
// expected shape. It is unrecoverable: callers surface it, nothing retries or
// substitutes defaults (the settings singleton being the one exception, which
// defaults at the repository layer).
var ErrStorageCorrupt = errors.New("storage payload corrupt")

// DocumentStore is the raw key-value medium under the typed repositories: one
// opaque JSON payload per document key, replaced whole on every write. Each
// Put/Delete must be internally atomic (a reader never sees a half-written
// payload) but there is no atomicity across calls.
//
// Get distinguishes a document that has never been written (found == false)
// from one written empty; the repositories use that to seed bootstrap data
// exactly once.
type DocumentStore interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}
