package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/memberhub/members-portal/internal/core/domain"
	"github.com/memberhub/members-portal/internal/core/ports"
)

// AccountService implements the admin-only account operations: listing users
// and moving them between the two roles.
type AccountService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	return s.repo.ListAll(ctx)
}

func (s *AccountService) Promote(ctx context.Context, username string) error {
	return s.setRole(ctx, username, domain.RoleAdmin)
}

func (s *AccountService) Demote(ctx context.Context, username string) error {
	return s.setRole(ctx, username, domain.RoleUser)
}

// setRole mutates the stored role only. Sessions created before the change
// keep their identity snapshot; the new role takes effect on next login.
func (s *AccountService) setRole(ctx context.Context, username string, role domain.Role) error {
	if err := s.repo.SetRole(ctx, username, role); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Str("role", string(role)).Msg("role changed")
	return nil
}
