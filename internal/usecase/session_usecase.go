package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
)

// SessionUseCase — жизненный цикл сессии: восстановление при старте,
// логин, регистрация и выход. Единственное место, где токен
// записывается и очищается.
type SessionUseCase struct {
	auth   repository.AuthGateway
	creds  repository.CredentialStore
	logger *zap.Logger
}

func NewSessionUseCase(
	auth repository.AuthGateway,
	creds repository.CredentialStore,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		auth:   auth,
		creds:  creds,
		logger: logger,
	}
}

// Resume восстанавливает сессию из локального хранилища.
// Пустой токен означает анонимную сессию: вызывающая сторона обязана
// уйти на экран входа до любых обращений к шлюзам.
func (uc *SessionUseCase) Resume(ctx context.Context) (domain.Session, error) {
	token, err := uc.creds.Token(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	if token == "" {
		return domain.Session{}, nil
	}

	user, err := uc.creds.User(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{Token: token, User: user}, nil
}

func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (domain.Session, error) {
	grant, err := uc.auth.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	if err := uc.creds.Save(ctx, grant.Token, &grant.User); err != nil {
		return domain.Session{}, err
	}

	uc.logger.Info("Logged in", zap.String("user_id", grant.User.ID))
	return domain.Session{Token: grant.Token, User: &grant.User}, nil
}

func (uc *SessionUseCase) Signup(ctx context.Context, name, email, password string) (domain.Session, error) {
	grant, err := uc.auth.Signup(ctx, name, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	if err := uc.creds.Save(ctx, grant.Token, &grant.User); err != nil {
		return domain.Session{}, err
	}

	uc.logger.Info("Signed up", zap.String("user_id", grant.User.ID))
	return domain.Session{Token: grant.Token, User: &grant.User}, nil
}

// Logout очищает токен и кэшированный профиль одним действием.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	if err := uc.creds.Clear(ctx); err != nil {
		return err
	}
	uc.logger.Info("Logged out")
	return nil
}
