package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// AuthGateway — аутентификация на удалённом API.
type AuthGateway interface {
	Signup(ctx context.Context, name, email, password string) (*domain.AuthGrant, error)
	Login(ctx context.Context, email, password string) (*domain.AuthGrant, error)

	// Me возвращает профиль владельца текущего токена.
	Me(ctx context.Context) (*domain.User, error)
}
