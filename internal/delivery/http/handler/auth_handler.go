package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	"github.com/tourguide-client/internal/pkg/auth"
	"github.com/tourguide-client/internal/pkg/validator"
	"github.com/tourguide-client/internal/usecase/dto"
)

// AuthHandler - обработчик регистрации и входа
type AuthHandler struct {
	users      repository.UserStore
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(users repository.UserStore, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        domain.User `json:"user"`
}

// Signup - регистрация нового пользователя
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validator.Validate(&req); err != nil {
		return sendDetail(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	existing, _, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		return sendError(c, err)
	}
	if existing != nil {
		return sendDetail(c, fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return sendError(c, err)
	}

	user := domain.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.users.Create(c.Context(), &user, hash); err != nil {
		return sendError(c, err)
	}

	token, err := h.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return sendError(c, err)
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID))

	return c.JSON(authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Login - вход по email и паролю
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validator.Validate(&req); err != nil {
		return sendDetail(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	user, hash, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		return sendError(c, err)
	}
	// Единый ответ для неизвестного email и неверного пароля.
	if user == nil || auth.CheckPassword(req.Password, hash) != nil {
		return sendDetail(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := h.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
	})
}

// Me - профиль владельца токена
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.FindByID(c.Context(), userID(c))
	if err != nil {
		return sendError(c, err)
	}
	if user == nil {
		return sendDetail(c, fiber.StatusUnauthorized, "User not found")
	}

	return c.JSON(user)
}
