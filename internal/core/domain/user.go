package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the authorization tier attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrValidationFailed     = errors.New("validation failed")
	ErrAuthenticationFailed = errors.New("invalid email/password combination")
	ErrDuplicateUser        = errors.New("username or email already taken")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidRole          = errors.New("invalid role")
	ErrStoreUnavailable     = errors.New("store unavailable")
)

// MissingFieldError reports a required credential field that was absent from
// a signup submission. Unlike shape violations, presence failures name the
// offending field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// User models a registered account. The plaintext password is never stored.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the projection exposed to the admin listing.
type UserSummary struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
