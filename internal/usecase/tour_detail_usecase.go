package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/domain/repository"
	apperrors "github.com/tourguide-client/internal/pkg/errors"
	"github.com/tourguide-client/internal/pkg/geo"
)

// Phase — фаза экрана деталей тура.
type Phase string

const (
	PhaseLoading   Phase = "loading"
	PhaseReady     Phase = "ready"
	PhaseEnrolling Phase = "enrolling"
	PhaseEnrolled  Phase = "enrolled"
	PhaseFailed    Phase = "failed"
)

// LocationState — исход запроса геопозиции.
// Denied и Unavailable для карты равнозначны («позиции нет»),
// но запись на тур блокирует только отсутствие разрешения.
type LocationState string

const (
	LocationPending     LocationState = "pending"
	LocationGranted     LocationState = "granted"
	LocationDenied      LocationState = "denied"
	LocationUnavailable LocationState = "unavailable"
)

// TourDetailState — снимок состояния экрана деталей тура.
type TourDetailState struct {
	Phase      Phase
	Tour       *domain.Tour
	Viewport   geo.Viewport
	IsEnrolled bool
	Location   LocationState
	// Position отсутствует, когда разрешение есть, но позицию получить
	// не удалось: маркер пользователя тогда не рисуется.
	Position *domain.Location
	Err      error
}

// TourDetailUseCase управляет экраном деталей тура: сводит три
// независимых источника (тур, записи, геопозиция) в одно состояние
// и ведёт машину записи на тур.
//
// Каждый экземпляр принадлежит одному показу экрана. После Close
// поздние результаты отбрасываются и состояние больше не меняется.
type TourDetailUseCase struct {
	tourID      string
	tours       repository.TourGateway
	enrollments repository.EnrollmentGateway
	location    repository.LocationProvider
	logger      *zap.Logger

	mu     sync.Mutex
	state  TourDetailState
	closed bool
}

func NewTourDetailUseCase(
	tourID string,
	tours repository.TourGateway,
	enrollments repository.EnrollmentGateway,
	location repository.LocationProvider,
	logger *zap.Logger,
) *TourDetailUseCase {
	return &TourDetailUseCase{
		tourID:      tourID,
		tours:       tours,
		enrollments: enrollments,
		location:    location,
		logger:      logger,
		state: TourDetailState{
			Phase:    PhaseLoading,
			Viewport: geo.DefaultViewport(),
			Location: LocationPending,
		},
	}
}

// Load запускает загрузку тура, записей и геопозиции параллельно и
// возвращается, когда все три завершились. Каждый результат
// применяется по мере прихода; порядок завершения не важен.
// Обязателен только тур: его ошибка переводит экран в PhaseFailed,
// остальные источники деградируют мягко.
func (uc *TourDetailUseCase) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		tour, err := uc.tours.GetTour(ctx, uc.tourID)
		uc.applyTour(tour, err)
	}()

	go func() {
		defer wg.Done()
		records, err := uc.enrollments.ListEnrollments(ctx)
		uc.applyEnrollments(records, err)
	}()

	go func() {
		defer wg.Done()
		granted, err := uc.location.RequestPermission(ctx)
		if err != nil {
			uc.applyLocation(LocationUnavailable, nil)
			return
		}
		if !granted {
			uc.applyLocation(LocationDenied, nil)
			return
		}
		pos, err := uc.location.CurrentLocation(ctx)
		if err != nil {
			// Разрешение есть, позиции нет: маркер пропадает,
			// запись на тур остаётся доступной.
			uc.applyLocation(LocationGranted, nil)
			return
		}
		uc.applyLocation(LocationGranted, &pos)
	}()

	wg.Wait()
}

func (uc *TourDetailUseCase) applyTour(tour *domain.Tour, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return
	}

	if err != nil {
		uc.logger.Error("Tour fetch failed", zap.String("tour_id", uc.tourID), zap.Error(err))
		uc.state.Phase = PhaseFailed
		uc.state.Err = err
		return
	}
	if uc.state.Phase == PhaseFailed {
		return
	}

	uc.state.Tour = tour
	uc.state.Viewport = geo.ComputeViewport(tour.RouteCoordinates())
	uc.state.Phase = PhaseReady
}

func (uc *TourDetailUseCase) applyEnrollments(records []domain.Enrollment, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return
	}

	if err != nil {
		// Неизвестный статус записи трактуем как «не записан».
		uc.logger.Warn("Enrollment check failed", zap.String("tour_id", uc.tourID), zap.Error(err))
		uc.state.IsEnrolled = false
		return
	}

	uc.state.IsEnrolled = domain.IsEnrolled(uc.tourID, records)
}

func (uc *TourDetailUseCase) applyLocation(state LocationState, pos *domain.Location) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return
	}

	uc.state.Location = state
	uc.state.Position = pos
}

// Enroll записывает пользователя на тур. Жёсткое предусловие —
// выданное разрешение на геолокацию: без него запрос в сеть не
// уходит. Повторная запись отклоняется локально.
func (uc *TourDetailUseCase) Enroll(ctx context.Context) error {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return context.Canceled
	}

	switch {
	case uc.state.Phase == PhaseEnrolling || uc.state.Phase == PhaseEnrolled || uc.state.IsEnrolled:
		uc.mu.Unlock()
		return apperrors.ErrAlreadyEnrolled
	case uc.state.Phase != PhaseReady:
		uc.mu.Unlock()
		return apperrors.ErrInvalidRequest.WithMessage("tour is not loaded")
	case uc.state.Location != LocationGranted:
		uc.mu.Unlock()
		return apperrors.ErrLocationPermissionDenied
	}

	uc.state.Phase = PhaseEnrolling
	uc.mu.Unlock()

	enrollment, err := uc.enrollments.Enroll(ctx, uc.tourID)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return err
	}

	if err != nil {
		uc.logger.Error("Enroll failed", zap.String("tour_id", uc.tourID), zap.Error(err))
		uc.state.Phase = PhaseReady
		return err
	}

	uc.logger.Info("Enrolled in tour",
		zap.String("tour_id", uc.tourID),
		zap.String("enrollment_id", enrollment.ID))
	uc.state.Phase = PhaseEnrolled
	uc.state.IsEnrolled = true
	return nil
}

// ReportLocation отправляет текущую позицию как точку трека тура.
// Требует выданного разрешения и полученной позиции.
func (uc *TourDetailUseCase) ReportLocation(ctx context.Context) error {
	uc.mu.Lock()
	if uc.state.Location != LocationGranted {
		uc.mu.Unlock()
		return apperrors.ErrLocationPermissionDenied
	}
	if uc.state.Position == nil {
		uc.mu.Unlock()
		return apperrors.ErrLocationUnavailable
	}
	pos := *uc.state.Position
	uc.mu.Unlock()

	return uc.enrollments.ReportLocation(ctx, uc.tourID, pos)
}

// State возвращает копию текущего состояния экрана.
func (uc *TourDetailUseCase) State() TourDetailState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Close помечает экран закрытым: поздние результаты отбрасываются.
func (uc *TourDetailUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.closed = true
}
