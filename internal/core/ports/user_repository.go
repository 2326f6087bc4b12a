package ports

import (
	"context"

	"github.com/memberhub/members-portal/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Uniqueness of
// usernames and emails is enforced by the store; callers rely on the
// duplicate signal rather than pre-checking.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	SetRole(ctx context.Context, username string, role domain.Role) error
	ListAll(ctx context.Context) ([]domain.UserSummary, error)
}
