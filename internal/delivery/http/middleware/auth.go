package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain/repository"
	"github.com/tourguide-client/internal/pkg/auth"
)

// UserIDKey — ключ c.Locals с id аутентифицированного пользователя.
const UserIDKey = "user_id"

// Auth - middleware аутентификации по bearer-токену.
// Проверяет подпись токена и существование пользователя; id кладётся
// в locals для обработчиков ниже по цепочке.
func Auth(jwtManager *auth.JWTManager, users repository.UserStore, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.ExtractToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Not authenticated",
			})
		}

		userID, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Debug("Token validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Could not validate credentials",
			})
		}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": "Internal server error",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "User not found",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
