package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
)

type authGateway struct {
	client *Client
	logger *zap.Logger
}

// NewAuthGateway создаёт шлюз аутентификации.
func NewAuthGateway(client *Client, logger *zap.Logger) repository.AuthGateway {
	return &authGateway{
		client: client,
		logger: logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *authGateway) Signup(ctx context.Context, name, email, password string) (*domain.AuthGrant, error) {
	var grant domain.AuthGrant
	err := g.client.do(ctx, http.MethodPost, "/api/signup", nil,
		signupRequest{Name: name, Email: email, Password: password}, &grant, false)
	if err != nil {
		g.logger.Error("Signup failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &grant, nil
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*domain.AuthGrant, error) {
	var grant domain.AuthGrant
	err := g.client.do(ctx, http.MethodPost, "/api/auth/login", nil,
		loginRequest{Email: email, Password: password}, &grant, false)
	if err != nil {
		g.logger.Error("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &grant, nil
}

func (g *authGateway) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.client.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user, true); err != nil {
		g.logger.Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
