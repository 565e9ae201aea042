package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	"github.com/tourguide-client/internal/pkg/geo"
	"github.com/tourguide-client/internal/pkg/validator"
	"github.com/tourguide-client/internal/usecase/dto"
)

// EnrollmentHandler - обработчик записей на туры и трека
type EnrollmentHandler struct {
	enrollments repository.EnrollmentStore
	tours       repository.TourStore
	logger      *zap.Logger
}

// NewEnrollmentHandler - создание нового EnrollmentHandler
func NewEnrollmentHandler(
	enrollments repository.EnrollmentStore,
	tours repository.TourStore,
	logger *zap.Logger,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollments: enrollments,
		tours:       tours,
		logger:      logger,
	}
}

// Enroll - запись текущего пользователя на тур.
// Повторная запись отклоняется с 409: клиент различает «записался»
// и «уже был записан».
func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validator.Validate(&req); err != nil {
		return sendDetail(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	tour, err := h.tours.Get(c.Context(), req.TourID)
	if err != nil {
		return sendError(c, err)
	}
	if tour == nil {
		return sendDetail(c, fiber.StatusNotFound, "Tour not found")
	}

	uid := userID(c)

	existing, err := h.enrollments.Find(c.Context(), uid, req.TourID)
	if err != nil {
		return sendError(c, err)
	}
	if existing != nil {
		return sendDetail(c, fiber.StatusConflict, "Already enrolled in this tour")
	}

	enrollment := domain.Enrollment{
		ID:        uuid.New().String(),
		TourID:    req.TourID,
		UserID:    uid,
		Status:    domain.EnrollmentNotStarted,
		Progress:  0,
		StartedAt: time.Now().UTC(),
	}
	if err := h.enrollments.Create(c.Context(), &enrollment); err != nil {
		return sendError(c, err)
	}

	h.logger.Info("User enrolled",
		zap.String("user_id", uid),
		zap.String("tour_id", req.TourID))

	return c.JSON(enrollment)
}

// List - все записи текущего пользователя
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	records, err := h.enrollments.ListByUser(c.Context(), userID(c))
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(records)
}

// UpdateLocation - сохранение точки трека пользователя
func (h *EnrollmentHandler) UpdateLocation(c *fiber.Ctx) error {
	var req dto.LocationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validator.Validate(&req); err != nil {
		return sendDetail(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if !geo.ValidateCoordinates(req.Location.Lat, req.Location.Lng) {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid coordinates provided")
	}
	loc := domain.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}

	sample := domain.LocationSample{
		UserID:    userID(c),
		TourID:    req.TourID,
		Location:  loc,
		Timestamp: time.Now().UTC(),
	}
	if err := h.enrollments.AppendLocation(c.Context(), sample); err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Location updated",
	})
}
