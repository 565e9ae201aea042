package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tourguide-client/internal/domain/repository"
	"github.com/tourguide-client/internal/usecase/dto"
)

const myToursFetchLimit = 8

// MyToursUseCase собирает список «мои туры»: к каждой записи
// подтягивает детали тура.
type MyToursUseCase struct {
	tours       repository.TourGateway
	enrollments repository.EnrollmentGateway
	logger      *zap.Logger
}

func NewMyToursUseCase(
	tours repository.TourGateway,
	enrollments repository.EnrollmentGateway,
	logger *zap.Logger,
) *MyToursUseCase {
	return &MyToursUseCase{
		tours:       tours,
		enrollments: enrollments,
		logger:      logger,
	}
}

// List возвращает записи пользователя с деталями туров. Детали
// загружаются параллельно; результат собирается по индексу, поэтому
// порядок всегда совпадает с порядком списка записей. Ошибка загрузки
// деталей одной записи не роняет список: Tour остаётся nil.
func (uc *MyToursUseCase) List(ctx context.Context) ([]dto.MyTourItem, error) {
	records, err := uc.enrollments.ListEnrollments(ctx)
	if err != nil {
		uc.logger.Error("Failed to list enrollments", zap.Error(err))
		return nil, err
	}

	items := make([]dto.MyTourItem, len(records))

	g := &errgroup.Group{}
	g.SetLimit(myToursFetchLimit)
	for i, record := range records {
		i, record := i, record
		items[i].Enrollment = record

		g.Go(func() error {
			tour, err := uc.tours.GetTour(ctx, record.TourID)
			if err != nil {
				uc.logger.Warn("Tour detail unavailable",
					zap.String("tour_id", record.TourID),
					zap.Error(err))
				return nil
			}
			items[i].Tour = tour
			return nil
		})
	}

	// Per-item errors never propagate; Wait only joins the fetches.
	_ = g.Wait()

	return items, nil
}
