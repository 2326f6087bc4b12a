package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/memberhub/members-portal/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore persists sessions in Redis. Key format: session:<id>.
// Redis evicts at the TTL set on write; the session manager additionally
// checks the embedded expiry on read.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get session: %v", domain.ErrStoreUnavailable, err)
	}
	return data, nil
}

func (s *SessionStore) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set session: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: destroy session: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
