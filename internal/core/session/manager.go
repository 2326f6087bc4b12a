package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/memberhub/members-portal/internal/core/ports"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = time.Hour

// Manager owns the session lifecycle over a pluggable store. Expiry is fixed
// at creation; there is no sliding renewal. Each successful login creates a
// fresh session with a fresh expiry.
type Manager struct {
	store ports.SessionStore
	ttl   time.Duration
}

func NewManager(store ports.SessionStore, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create stores an authenticated session for the given identity and returns
// its opaque id.
func (m *Manager) Create(ctx context.Context, id Identity) (string, error) {
	sess := Session{
		Authenticated: true,
		Username:      id.Username,
		Email:         id.Email,
		Role:          id.Role,
		ExpiresAt:     time.Now().UTC().Add(m.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	sid := uuid.NewString()
	if err := m.store.Set(ctx, sid, data, m.ttl); err != nil {
		return "", err
	}
	return sid, nil
}

// Read returns the session for id, or nil when the id is unknown, expired, or
// undecodable. The store's own TTL is authoritative; the ExpiresAt check
// covers stores that evict lazily.
func (m *Manager) Read(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}

	data, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, nil
	}
	if !sess.Authenticated || !sess.Role.Valid() || !time.Now().Before(sess.ExpiresAt) {
		return nil, nil
	}
	return &sess, nil
}

// Destroy invalidates the session immediately. Subsequent reads report it
// absent regardless of its remaining TTL.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Destroy(ctx, id)
}
