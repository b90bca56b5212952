package ports

import (
	"context"
	"time"
)

// CachePort is one cache tier. Get returns domain.ErrCacheMiss for absent or
// expired keys.
type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
