package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/memberhub/members-portal/internal/core/domain"
	"github.com/memberhub/members-portal/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

// Signup validates the submitted credentials, hashes the password, and
// inserts the user with the default role. Uniqueness is not pre-checked; the
// store's duplicate signal is authoritative.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := ValidateSignup(username, email, password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same ErrAuthenticationFailed, and the unknown-email
// path burns a hash comparison so the two are not distinguishable by timing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			VerifyPassword(password, dummyHash)
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrAuthenticationFailed
	}

	s.log.Debug().Str("username", user.Username).Msg("login succeeded")
	return user, nil
}
