package cache

import (
	"context"
	"time"
)

// Store is a small JSON key-value store with expiry. It backs the
// per-session view state (edit mode, locally archived tasks, locally
// added skills) and the user-record cache.
type Store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
