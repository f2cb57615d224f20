package ports

import (
	"context"
	"time"
)

// Cache abstracts the distributed cache (Redis) and the in-memory fallback.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
