package api

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	apperrors "github.com/tourguide-client/internal/pkg/errors"
)

type tourGateway struct {
	client *Client
	logger *zap.Logger
}

// NewTourGateway создаёт шлюз каталога туров поверх общего транспорта.
func NewTourGateway(client *Client, logger *zap.Logger) repository.TourGateway {
	return &tourGateway{
		client: client,
		logger: logger,
	}
}

func (g *tourGateway) ListTours(ctx context.Context, category string) ([]domain.TourSummary, error) {
	if !domain.ValidCategory(category) {
		return nil, apperrors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": category,
		})
	}

	query := url.Values{}
	if category != "" && category != domain.CategoryAll {
		query.Set("category", category)
	}

	var tours []domain.TourSummary
	if err := g.client.do(ctx, http.MethodGet, "/api/tours", query, nil, &tours, true); err != nil {
		g.logger.Error("Failed to list tours", zap.String("category", category), zap.Error(err))
		return nil, err
	}

	g.logger.Debug("Tours fetched", zap.Int("count", len(tours)))
	return tours, nil
}

func (g *tourGateway) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	var tour domain.Tour
	if err := g.client.do(ctx, http.MethodGet, "/api/tours/"+url.PathEscape(id), nil, nil, &tour, true); err != nil {
		g.logger.Error("Failed to get tour", zap.String("tour_id", id), zap.Error(err))
		return nil, err
	}

	g.logger.Debug("Tour fetched",
		zap.String("tour_id", tour.ID),
		zap.Int("poi_count", len(tour.PointsOfInterest)))
	return &tour, nil
}
