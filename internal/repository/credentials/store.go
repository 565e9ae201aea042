package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
)

// Фиксированные ключи локального хранилища.
const (
	keyToken = "auth_token"
	keyUser  = "user"
)

// Store — файловое хранилище токена и кэшированного профиля.
// Токен и профиль живут в одном файле и очищаются одним удалением,
// поэтому частично очищенное состояние невозможно.
type Store struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewStore(fs afero.Fs, path string, logger *zap.Logger) repository.CredentialStore {
	return &Store{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

type fileContents struct {
	Token string       `json:"auth_token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

func (s *Store) Token(ctx context.Context) (string, error) {
	contents, err := s.read()
	if err != nil {
		return "", err
	}
	return contents.Token, nil
}

func (s *Store) User(ctx context.Context) (*domain.User, error) {
	contents, err := s.read()
	if err != nil {
		return nil, err
	}
	return contents.User, nil
}

func (s *Store) Save(ctx context.Context, token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(fileContents{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create credentials dir: %w", err)
		}
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	s.logger.Debug("Credentials saved", zap.String("path", s.path))
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	s.logger.Debug("Credentials cleared", zap.String("path", s.path))
	return nil
}

func (s *Store) read() (fileContents, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileContents{}, nil
		}
		return fileContents{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		// Повреждённый файл равносилен отсутствию сессии.
		s.logger.Warn("Corrupted credentials file, treating as empty", zap.Error(err))
		return fileContents{}, nil
	}

	return contents, nil
}
