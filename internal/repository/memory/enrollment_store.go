package memory

import (
	"context"
	"sync"

	"github.com/tourguide-client/internal/domain"
)

// EnrollmentStore — in-memory хранилище записей на туры и точек трека.
type EnrollmentStore struct {
	mu      sync.RWMutex
	byUser  map[string][]domain.Enrollment
	samples []domain.LocationSample
}

func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{
		byUser: make(map[string][]domain.Enrollment),
	}
}

func (s *EnrollmentStore) ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.byUser[userID]
	out := make([]domain.Enrollment, len(records))
	copy(out, records)
	return out, nil
}

func (s *EnrollmentStore) Find(ctx context.Context, userID, tourID string) (*domain.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.byUser[userID] {
		if record.TourID == tourID {
			copied := record
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *EnrollmentStore) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[enrollment.UserID] = append(s.byUser[enrollment.UserID], *enrollment)
	return nil
}

func (s *EnrollmentStore) AppendLocation(ctx context.Context, sample domain.LocationSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = append(s.samples, sample)
	return nil
}
