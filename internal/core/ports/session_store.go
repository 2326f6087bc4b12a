package ports

import (
	"context"
	"time"
)

// SessionStore is the capability the session manager needs from a durable
// session backend. Get returns nil data when the id is unknown or already
// evicted; stores with native expiry should evict at ttl.
type SessionStore interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}
