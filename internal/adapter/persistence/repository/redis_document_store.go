package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisDocumentStore is the Redis rendition of DocumentStore: one string key
// per logical collection, SET replaces the whole payload. Selected with
// STORAGE_BACKEND=redis.

type RedisDocumentStore struct {
	rdb *redis.Client
}

var _ DocumentStore = (*RedisDocumentStore)(nil)

func NewRedisDocumentStore(rdb *redis.Client) *RedisDocumentStore {
	return &RedisDocumentStore{rdb: rdb}
}

func (s *RedisDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *RedisDocumentStore) Put(ctx context.Context, key string, payload []byte) error {
	return s.rdb.Set(ctx, key, payload, 0).Err()
}

func (s *RedisDocumentStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
