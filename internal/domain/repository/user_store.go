package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// UserStore — серверное хранилище пользователей (dev-заглушка API).
type UserStore interface {
	// FindByEmail возвращает пользователя и хэш пароля, nil если не найден.
	FindByEmail(ctx context.Context, email string) (*domain.User, string, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)

	Create(ctx context.Context, user *domain.User, passwordHash string) error
}
