package ports

import (
	"context"

	"github.com/memberhub/members-portal/internal/core/domain"
)

type AccountService interface {
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	Promote(ctx context.Context, username string) error
	Demote(ctx context.Context, username string) error
}
