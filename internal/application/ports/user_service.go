package ports

import (
	"context"

	"user-registry-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context) (user.Users, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Register(ctx context.Context, reg user.Registration, password string) (*user.User, error)
}
