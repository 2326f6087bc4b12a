package session

import (
	"time"

	"github.com/memberhub/members-portal/internal/core/domain"
)

// Identity is the user data copied into a session at login.
type Identity struct {
	Username string
	Email    string
	Role     domain.Role
}

// Session is the authenticated state tracked server-side for one client,
// referenced by an opaque id held in a cookie. Identity fields are a snapshot
// taken at login; role changes after login do not alter an existing session.
type Session struct {
	Authenticated bool        `json:"authenticated"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Role          domain.Role `json:"role"`
	ExpiresAt     time.Time   `json:"expires_at"`
}
