package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/memberhub/members-portal/internal/core/domain"
)

func TestValidateSignup_Valid(t *testing.T) {
	if err := ValidateSignup("alice", "a@x.com", "pw12345"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
}

func TestValidateSignup_PresenceOrder(t *testing.T) {
	cases := []struct {
		name                      string
		username, email, password string
		wantField                 string
	}{
		{"all missing reports username first", "", "", "", "username"},
		{"email missing", "alice", "", "", "email"},
		{"password missing", "alice", "a@x.com", "", "password"},
	}

	for _, tc := range cases {
		err := ValidateSignup(tc.username, tc.email, tc.password)
		var missing *domain.MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingFieldError, got %v", tc.name, err)
		}
		if missing.Field != tc.wantField {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.wantField, missing.Field)
		}
	}
}

func TestValidateSignup_ShapeViolationsAreGeneric(t *testing.T) {
	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"username too long", strings.Repeat("a", 21), "a@x.com", "pw"},
		{"username not alphanumeric", "al ice!", "a@x.com", "pw"},
		{"email malformed", "alice", "not-an-email", "pw"},
		{"password too long", "alice", "a@x.com", strings.Repeat("p", 21)},
	}

	for _, tc := range cases {
		err := ValidateSignup(tc.username, tc.email, tc.password)
		if !errors.Is(err, domain.ErrValidationFailed) {
			t.Fatalf("%s: expected ErrValidationFailed, got %v", tc.name, err)
		}
		var missing *domain.MissingFieldError
		if errors.As(err, &missing) {
			t.Fatalf("%s: shape violation must not name a field", tc.name)
		}
	}
}

func TestValidateSignup_BoundaryLengths(t *testing.T) {
	if err := ValidateSignup(strings.Repeat("a", 20), "a@x.com", strings.Repeat("p", 20)); err != nil {
		t.Fatalf("20-char username and password must pass, got %v", err)
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("a@x.com", "pw12345"); err != nil {
		t.Fatalf("expected valid login credentials, got %v", err)
	}

	cases := []struct {
		name            string
		email, password string
	}{
		{"missing email", "", "pw"},
		{"missing password", "a@x.com", ""},
		{"malformed email", "nope", "pw"},
		{"password too long", "a@x.com", strings.Repeat("p", 21)},
	}
	for _, tc := range cases {
		if err := ValidateLogin(tc.email, tc.password); !errors.Is(err, domain.ErrValidationFailed) {
			t.Fatalf("%s: expected ErrValidationFailed, got %v", tc.name, err)
		}
	}
}
