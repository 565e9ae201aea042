package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// EnrollmentGateway — операции с записями текущего пользователя на туры.
type EnrollmentGateway interface {
	// ListEnrollments возвращает все записи текущего пользователя.
	ListEnrollments(ctx context.Context) ([]domain.Enrollment, error)

	// Enroll создаёт новую запись на тур.
	// Возвращает errors.ErrAlreadyEnrolled, если запись уже существует.
	Enroll(ctx context.Context, tourID string) (*domain.Enrollment, error)

	// ReportLocation отправляет точку трека во время прохождения тура.
	ReportLocation(ctx context.Context, tourID string, loc domain.Location) error
}
