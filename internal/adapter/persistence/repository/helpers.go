package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// decodeCollection turns a stored payload into a typed slice, mapping decode
// failures to ErrStorageCorrupt so callers can tell data damage apart from
// medium errors.
func decodeCollection[T any](key string, payload []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%w: document %s: %v", ErrStorageCorrupt, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// putCollection serializes the whole collection and replaces the stored
// document in one write.
func putCollection[T any](ctx context.Context, store DocumentStore, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, payload)
}
