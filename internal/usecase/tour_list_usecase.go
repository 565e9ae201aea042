package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	apperrors "github.com/tourguide-client/internal/pkg/errors"
)

// TourListUseCase — каталог туров с фильтром по категории.
type TourListUseCase struct {
	tours  repository.TourGateway
	logger *zap.Logger
}

func NewTourListUseCase(tours repository.TourGateway, logger *zap.Logger) *TourListUseCase {
	return &TourListUseCase{
		tours:  tours,
		logger: logger,
	}
}

func (uc *TourListUseCase) List(ctx context.Context, category string) ([]domain.TourSummary, error) {
	if !domain.ValidCategory(category) {
		return nil, apperrors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": category,
		})
	}

	tours, err := uc.tours.ListTours(ctx, category)
	if err != nil {
		uc.logger.Error("Failed to load tour catalog",
			zap.String("category", category),
			zap.Error(err))
		return nil, err
	}

	return tours, nil
}
