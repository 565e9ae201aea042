package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// TourStore — серверное хранилище туров (dev-заглушка API).
type TourStore interface {
	List(ctx context.Context, category string) ([]domain.Tour, error)
	Get(ctx context.Context, id string) (*domain.Tour, error)
	Create(ctx context.Context, tour *domain.Tour) error
}
