package database

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client for the alternate document-store
// backend (STORAGE_BACKEND=redis).
//
// Env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
