package ports

import (
	"context"

	"github.com/memberhub/members-portal/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
