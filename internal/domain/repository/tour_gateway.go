package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// TourGateway — доступ к каталогу туров удалённого API.
type TourGateway interface {
	// ListTours возвращает список туров, опционально отфильтрованный
	// по категории. Пустая категория и "all" — без фильтра.
	ListTours(ctx context.Context, category string) ([]domain.TourSummary, error)

	// GetTour возвращает полное описание тура с упорядоченными POI.
	GetTour(ctx context.Context, id string) (*domain.Tour, error)
}
