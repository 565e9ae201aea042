package location

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/config"
	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	apperrors "github.com/tourguide-client/internal/pkg/errors"
	"github.com/tourguide-client/internal/pkg/geo"
)

// Static — провайдер геопозиции, управляемый конфигурацией.
// Консольному клиенту системный диалог разрешений недоступен, поэтому
// и разрешение, и координаты берутся из настроек.
type Static struct {
	granted bool
	pos     domain.Location
	logger  *zap.Logger
}

func NewStatic(cfg *config.LocationConfig, logger *zap.Logger) repository.LocationProvider {
	return &Static{
		granted: cfg.Granted,
		pos:     domain.Location{Lat: cfg.Lat, Lng: cfg.Lng},
		logger:  logger,
	}
}

func (s *Static) RequestPermission(ctx context.Context) (bool, error) {
	s.logger.Debug("Location permission requested", zap.Bool("granted", s.granted))
	return s.granted, nil
}

func (s *Static) CurrentLocation(ctx context.Context) (domain.Location, error) {
	if !s.granted {
		return domain.Location{}, apperrors.ErrLocationPermissionDenied
	}
	if !geo.ValidateCoordinates(s.pos.Lat, s.pos.Lng) {
		return domain.Location{}, apperrors.ErrLocationUnavailable
	}
	return s.pos, nil
}
