package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/tourguide-client/internal/domain"
)

type userRecord struct {
	user domain.User
	hash string
}

// UserStore — in-memory хранилище пользователей. Email сравнивается
// без учёта регистра.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]userRecord
	byEmail map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]userRecord),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, "", nil
	}
	record := s.byID[id]
	user := record.user
	return &user, record.hash, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	user := record.user
	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[user.ID] = userRecord{user: *user, hash: passwordHash}
	s.byEmail[strings.ToLower(user.Email)] = user.ID
	return nil
}
