package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// EnrollmentStore — серверное хранилище записей на туры (dev-заглушка API).
type EnrollmentStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error)

	// Find возвращает запись пары (user, tour), nil если её нет.
	Find(ctx context.Context, userID, tourID string) (*domain.Enrollment, error)

	Create(ctx context.Context, enrollment *domain.Enrollment) error

	// AppendLocation сохраняет точку трека пользователя.
	AppendLocation(ctx context.Context, sample domain.LocationSample) error
}
