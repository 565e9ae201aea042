package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/tourguide-client/internal/pkg/errors"
)

// Ошибки отдаются в формате {"detail": "..."} — его ждут мобильные клиенты.

func sendDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}

func sendError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return sendDetail(c, appErr.StatusCode, appErr.Message)
	}
	return sendDetail(c, fiber.StatusInternalServerError, "Internal server error")
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
