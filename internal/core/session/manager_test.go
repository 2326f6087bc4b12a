package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/memberhub/members-portal/internal/core/domain"
)

// memoryStore never evicts on its own, which makes it useful for exercising
// the manager's lazy expiry check.
type memoryStore struct {
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, id string) ([]byte, error) {
	return s.data[id], nil
}

func (s *memoryStore) Set(_ context.Context, id string, data []byte, _ time.Duration) error {
	s.data[id] = data
	return nil
}

func (s *memoryStore) Destroy(_ context.Context, id string) error {
	delete(s.data, id)
	return nil
}

func TestManager_CreateAndRead(t *testing.T) {
	mgr := NewManager(newMemoryStore(), time.Hour)

	before := time.Now().UTC()
	id, err := mgr.Create(context.Background(), Identity{Username: "alice", Email: "a@x.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty session id")
	}

	sess, err := mgr.Read(context.Background(), id)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if sess == nil {
		t.Fatalf("expected session, got nil")
	}
	if !sess.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if sess.Username != "alice" || sess.Email != "a@x.com" || sess.Role != domain.RoleUser {
		t.Fatalf("unexpected identity snapshot: %+v", sess)
	}
	if sess.ExpiresAt.Before(before.Add(time.Hour-time.Minute)) || sess.ExpiresAt.After(time.Now().UTC().Add(time.Hour)) {
		t.Fatalf("expiry not set to creation + TTL: %v", sess.ExpiresAt)
	}
}

func TestManager_ReadUnknownID(t *testing.T) {
	mgr := NewManager(newMemoryStore(), time.Hour)

	sess, err := mgr.Read(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if sess != nil {
		t.Fatalf("unknown id must read as absent")
	}

	sess, err = mgr.Read(context.Background(), "")
	if err != nil || sess != nil {
		t.Fatalf("empty id must read as absent, got %v %v", sess, err)
	}
}

func TestManager_Destroy(t *testing.T) {
	mgr := NewManager(newMemoryStore(), time.Hour)

	id, err := mgr.Create(context.Background(), Identity{Username: "bob", Email: "b@x.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := mgr.Destroy(context.Background(), id); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}

	sess, err := mgr.Read(context.Background(), id)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if sess != nil {
		t.Fatalf("destroyed session must read as absent")
	}
}

func TestManager_ExpiredSessionIsAbsent(t *testing.T) {
	store := newMemoryStore()
	mgr := NewManager(store, time.Hour)

	// Plant a session whose ExpiresAt has already passed; the store still
	// holds it, so only the lazy check can reject it.
	expired := Session{
		Authenticated: true,
		Username:      "carol",
		Email:         "c@x.com",
		Role:          domain.RoleUser,
		ExpiresAt:     time.Now().UTC().Add(-time.Minute),
	}
	data, err := json.Marshal(expired)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := store.Set(context.Background(), "stale", data, time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	sess, err := mgr.Read(context.Background(), "stale")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if sess != nil {
		t.Fatalf("expired session must read as absent")
	}
}

func TestManager_RejectsBadPayloads(t *testing.T) {
	store := newMemoryStore()
	mgr := NewManager(store, time.Hour)

	store.data["garbage"] = []byte("{not json")
	if sess, err := mgr.Read(context.Background(), "garbage"); err != nil || sess != nil {
		t.Fatalf("undecodable payload must read as absent, got %v %v", sess, err)
	}

	bad := Session{Authenticated: true, Username: "x", Role: "superuser", ExpiresAt: time.Now().Add(time.Hour)}
	data, _ := json.Marshal(bad)
	store.data["badrole"] = data
	if sess, err := mgr.Read(context.Background(), "badrole"); err != nil || sess != nil {
		t.Fatalf("session with unknown role must read as absent, got %v %v", sess, err)
	}
}

func TestManager_DefaultTTL(t *testing.T) {
	mgr := NewManager(newMemoryStore(), 0)
	if mgr.TTL() != DefaultTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTTL, mgr.TTL())
	}
}

func TestManager_SnapshotNotLive(t *testing.T) {
	mgr := NewManager(newMemoryStore(), time.Hour)

	id, err := mgr.Create(context.Background(), Identity{Username: "dave", Email: "d@x.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A role change after login creates no write to the existing session;
	// reading it back must still show the role captured at creation.
	sess, err := mgr.Read(context.Background(), id)
	if err != nil || sess == nil {
		t.Fatalf("read failed: %v %v", sess, err)
	}
	if sess.Role != domain.RoleUser {
		t.Fatalf("expected snapshot role %q, got %q", domain.RoleUser, sess.Role)
	}

	id2, err := mgr.Create(context.Background(), Identity{Username: "dave", Email: "d@x.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	sess2, err := mgr.Read(context.Background(), id2)
	if err != nil || sess2 == nil {
		t.Fatalf("read failed: %v %v", sess2, err)
	}
	if sess2.Role != domain.RoleAdmin {
		t.Fatalf("new session must carry the new role")
	}
	if sess, _ = mgr.Read(context.Background(), id); sess.Role != domain.RoleUser {
		t.Fatalf("pre-existing session must keep its snapshot role")
	}
}
