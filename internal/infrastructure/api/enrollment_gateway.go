package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
)

type enrollmentGateway struct {
	client *Client
	logger *zap.Logger
}

// NewEnrollmentGateway создаёт шлюз записей на туры.
func NewEnrollmentGateway(client *Client, logger *zap.Logger) repository.EnrollmentGateway {
	return &enrollmentGateway{
		client: client,
		logger: logger,
	}
}

func (g *enrollmentGateway) ListEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	if err := g.client.do(ctx, http.MethodGet, "/api/user-tours", nil, nil, &enrollments, true); err != nil {
		g.logger.Error("Failed to list enrollments", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

type enrollRequest struct {
	TourID string `json:"tour_id"`
}

func (g *enrollmentGateway) Enroll(ctx context.Context, tourID string) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := g.client.do(ctx, http.MethodPost, "/api/user-tours/enroll", nil,
		enrollRequest{TourID: tourID}, &enrollment, true)
	if err != nil {
		g.logger.Error("Failed to enroll", zap.String("tour_id", tourID), zap.Error(err))
		return nil, err
	}

	g.logger.Info("Enrolled in tour",
		zap.String("tour_id", tourID),
		zap.String("enrollment_id", enrollment.ID))
	return &enrollment, nil
}

type locationUpdateRequest struct {
	TourID   string          `json:"tour_id"`
	Location domain.Location `json:"location"`
}

func (g *enrollmentGateway) ReportLocation(ctx context.Context, tourID string, loc domain.Location) error {
	err := g.client.do(ctx, http.MethodPost, "/api/location/update", nil,
		locationUpdateRequest{TourID: tourID, Location: loc}, nil, true)
	if err != nil {
		g.logger.Warn("Failed to report location", zap.String("tour_id", tourID), zap.Error(err))
		return err
	}
	return nil
}
