package memory

import (
	"context"
	"sync"

	"github.com/tourguide-client/internal/domain"
)

// TourStore — in-memory хранилище туров для dev-сервера.
// Порядок вставки сохраняется, чтобы список был стабильным между запросами.
type TourStore struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Tour
	order []string
}

func NewTourStore() *TourStore {
	return &TourStore{
		byID: make(map[string]*domain.Tour),
	}
}

func (s *TourStore) List(ctx context.Context, category string) ([]domain.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tours := make([]domain.Tour, 0, len(s.order))
	for _, id := range s.order {
		tour := s.byID[id]
		if category != "" && category != domain.CategoryAll && tour.Category != category {
			continue
		}
		tours = append(tours, *tour)
	}
	return tours, nil
}

func (s *TourStore) Get(ctx context.Context, id string) (*domain.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tour, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *tour
	return &copied, nil
}

func (s *TourStore) Create(ctx context.Context, tour *domain.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *tour
	s.byID[tour.ID] = &copied
	s.order = append(s.order, tour.ID)
	return nil
}
