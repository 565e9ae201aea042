package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	"github.com/tourguide-client/internal/pkg/validator"
	"github.com/tourguide-client/internal/usecase/dto"
)

// TourHandler - обработчик каталога туров
type TourHandler struct {
	tours  repository.TourStore
	logger *zap.Logger
}

// NewTourHandler - создание нового TourHandler
func NewTourHandler(tours repository.TourStore, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		tours:  tours,
		logger: logger,
	}
}

// List - список туров с опциональным фильтром по категории
func (h *TourHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	if !domain.ValidCategory(category) {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid tour category")
	}

	tours, err := h.tours.List(c.Context(), category)
	if err != nil {
		return sendError(c, err)
	}

	// Список отдаётся без POI.
	summaries := make([]domain.TourSummary, 0, len(tours))
	for _, tour := range tours {
		summaries = append(summaries, domain.TourSummary{
			ID:           tour.ID,
			Name:         tour.Name,
			Description:  tour.Description,
			Difficulty:   tour.Difficulty,
			Duration:     tour.Duration,
			Distance:     tour.Distance,
			Category:     tour.Category,
			Image:        tour.Image,
			Rating:       tour.Rating,
			ReviewsCount: tour.ReviewsCount,
		})
	}

	return c.JSON(summaries)
}

// Get - полное описание тура с POI
func (h *TourHandler) Get(c *fiber.Ctx) error {
	tour, err := h.tours.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	if tour == nil {
		return sendDetail(c, fiber.StatusNotFound, "Tour not found")
	}

	return c.JSON(tour)
}

// Create - добавление нового тура
func (h *TourHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTourRequest
	if err := c.BodyParser(&req); err != nil {
		return sendDetail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validator.Validate(&req); err != nil {
		return sendDetail(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	now := time.Now().UTC()
	tour := domain.Tour{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Difficulty:   domain.ParseDifficulty(req.Difficulty),
		Duration:     req.Duration,
		Distance:     req.Distance,
		Category:     req.Category,
		Image:        req.Image,
		Rating:       req.Rating,
		ReviewsCount: req.ReviewsCount,
		CreatedAt:    &now,
	}

	for _, poi := range req.PointsOfInterest {
		id := poi.ID
		if id == "" {
			id = uuid.New().String()
		}
		tour.PointsOfInterest = append(tour.PointsOfInterest, domain.PointOfInterest{
			ID:          id,
			Name:        poi.Name,
			Description: poi.Description,
			Location:    domain.Location{Lat: poi.Location.Lat, Lng: poi.Location.Lng},
			Order:       poi.Order,
			Image:       poi.Image,
		})
	}

	if err := h.tours.Create(c.Context(), &tour); err != nil {
		return sendError(c, err)
	}

	h.logger.Info("Tour created", zap.String("tour_id", tour.ID), zap.String("name", tour.Name))

	return c.JSON(tour)
}
