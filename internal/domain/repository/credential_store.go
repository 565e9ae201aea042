package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// CredentialStore — локальное хранилище токена и кэшированного профиля.
// Токен и профиль живут под фиксированными ключами и очищаются вместе.
type CredentialStore interface {
	// Token возвращает сохранённый bearer-токен, пустую строку если его нет.
	Token(ctx context.Context) (string, error)

	// User возвращает кэшированный профиль, nil если он не сохранён.
	User(ctx context.Context) (*domain.User, error)

	// Save атомарно сохраняет токен вместе с профилем.
	Save(ctx context.Context, token string, user *domain.User) error

	// Clear удаляет токен и профиль. Частичная очистка не допускается.
	Clear(ctx context.Context) error
}
