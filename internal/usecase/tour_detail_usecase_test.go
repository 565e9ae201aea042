package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
	apperrors "github.com/tourguide-client/internal/pkg/errors"
	"github.com/tourguide-client/internal/usecase"
)

func detailTour() *domain.Tour {
	return &domain.Tour{
		ID:         "tour-1",
		Name:       "Historic Downtown Walking Tour",
		Difficulty: domain.DifficultyEasy,
		Category:   domain.CategoryWalking,
		PointsOfInterest: []domain.PointOfInterest{
			{ID: "poi-1", Name: "Old Square", Location: domain.Location{Lat: 40.0, Lng: -74.0}, Order: 0},
			{ID: "poi-2", Name: "City Hall", Location: domain.Location{Lat: 40.1, Lng: -73.9}, Order: 1},
		},
	}
}

func newDetailMocks() (*MockTourGateway, *MockEnrollmentGateway, *MockLocationProvider) {
	return new(MockTourGateway), new(MockEnrollmentGateway), new(MockLocationProvider)
}

func TestTourDetailUseCase_Load_Ready(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.05, Lng: -73.95}, nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	state := uc.State()
	assert.Equal(t, usecase.PhaseReady, state.Phase)
	require.NotNil(t, state.Tour)
	assert.Equal(t, "Historic Downtown Walking Tour", state.Tour.Name)
	assert.False(t, state.IsEnrolled)

	// Viewport derives from the two POI coordinates.
	assert.InDelta(t, 40.05, state.Viewport.Center.Lat, 1e-9)
	assert.InDelta(t, -73.95, state.Viewport.Center.Lng, 1e-9)
	assert.InDelta(t, 0.15, state.Viewport.LatSpan, 1e-9)
	assert.InDelta(t, 0.15, state.Viewport.LngSpan, 1e-9)

	assert.Equal(t, usecase.LocationGranted, state.Location)
	require.NotNil(t, state.Position)
	assert.InDelta(t, 40.05, state.Position.Lat, 1e-9)
}

func TestTourDetailUseCase_Load_TourFailure(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(nil, apperrors.ErrServer)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	state := uc.State()
	assert.Equal(t, usecase.PhaseFailed, state.Phase)
	assert.Nil(t, state.Tour)
	assert.True(t, errors.Is(state.Err, apperrors.ErrServer))

	// Экран не готов — запись невозможна и в сеть не уходит.
	err := uc.Enroll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRequest))
	enrollments.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
}

func TestTourDetailUseCase_Load_EnrollmentCheckFailure(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return(nil, apperrors.ErrNetwork)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	state := uc.State()
	assert.Equal(t, usecase.PhaseReady, state.Phase)
	assert.False(t, state.IsEnrolled)
}

func TestTourDetailUseCase_Load_LocationStates(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(location *MockLocationProvider)
		wantState    usecase.LocationState
		wantPosition bool
	}{
		{
			name: "permission denied",
			setup: func(location *MockLocationProvider) {
				location.On("RequestPermission", mock.Anything).Return(false, nil)
			},
			wantState: usecase.LocationDenied,
		},
		{
			name: "permission request failed",
			setup: func(location *MockLocationProvider) {
				location.On("RequestPermission", mock.Anything).Return(false, errors.New("service off"))
			},
			wantState: usecase.LocationUnavailable,
		},
		{
			name: "granted without fix",
			setup: func(location *MockLocationProvider) {
				location.On("RequestPermission", mock.Anything).Return(true, nil)
				location.On("CurrentLocation", mock.Anything).Return(domain.Location{}, errors.New("no fix"))
			},
			wantState: usecase.LocationGranted,
		},
		{
			name: "granted with fix",
			setup: func(location *MockLocationProvider) {
				location.On("RequestPermission", mock.Anything).Return(true, nil)
				location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)
			},
			wantState:    usecase.LocationGranted,
			wantPosition: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tours, enrollments, location := newDetailMocks()
			tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
			enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
			tt.setup(location)

			uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
			uc.Load(context.Background())

			state := uc.State()
			assert.Equal(t, tt.wantState, state.Location)
			if tt.wantPosition {
				assert.NotNil(t, state.Position)
			} else {
				assert.Nil(t, state.Position)
			}
		})
	}
}

func TestTourDetailUseCase_Enroll_Success(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)
	enrollments.On("Enroll", mock.Anything, "tour-1").Return(&domain.Enrollment{
		ID:     "enr-1",
		TourID: "tour-1",
		Status: domain.EnrollmentNotStarted,
	}, nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	err := uc.Enroll(context.Background())
	require.NoError(t, err)

	state := uc.State()
	assert.Equal(t, usecase.PhaseEnrolled, state.Phase)
	assert.True(t, state.IsEnrolled)

	// Повторная запись отклоняется локально, второго запроса нет.
	err = uc.Enroll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyEnrolled))
	enrollments.AssertNumberOfCalls(t, "Enroll", 1)
}

func TestTourDetailUseCase_Enroll_LocationNotGranted(t *testing.T) {
	tests := []struct {
		name  string
		setup func(location *MockLocationProvider)
	}{
		{
			name: "denied",
			setup: func(location *MockLocationProvider) {
				location.On("RequestPermission", mock.Anything).Return(false, nil)
			},
		},
		{
			name: "unavailable",
			setup: func(location *MockLocationProvider) {
				location.On("RequestPermission", mock.Anything).Return(false, errors.New("service off"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tours, enrollments, location := newDetailMocks()
			tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
			enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
			tt.setup(location)

			uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
			uc.Load(context.Background())

			err := uc.Enroll(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrLocationPermissionDenied))
			enrollments.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
			assert.Equal(t, usecase.PhaseReady, uc.State().Phase)
		})
	}
}

func TestTourDetailUseCase_Enroll_AlreadyEnrolledFromRecords(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{
		{ID: "enr-1", TourID: "tour-1", Status: domain.EnrollmentCompleted},
	}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	require.True(t, uc.State().IsEnrolled)

	err := uc.Enroll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyEnrolled))
	enrollments.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
}

func TestTourDetailUseCase_Enroll_FailureReturnsToReady(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)
	enrollments.On("Enroll", mock.Anything, "tour-1").Return(nil, apperrors.ErrNetwork)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	err := uc.Enroll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNetwork))

	state := uc.State()
	assert.Equal(t, usecase.PhaseReady, state.Phase)
	assert.False(t, state.IsEnrolled)
}

func TestTourDetailUseCase_ReportLocation(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.05, Lng: -73.95}, nil)
	enrollments.On("ReportLocation", mock.Anything, "tour-1", domain.Location{Lat: 40.05, Lng: -73.95}).Return(nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	require.NoError(t, uc.ReportLocation(context.Background()))
	enrollments.AssertExpectations(t)
}

func TestTourDetailUseCase_ReportLocation_NoPosition(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").Return(detailTour(), nil)
	enrollments.On("ListEnrollments", mock.Anything).Return([]domain.Enrollment{}, nil)
	location.On("RequestPermission", mock.Anything).Return(true, nil)
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{}, errors.New("no fix"))

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())
	uc.Load(context.Background())

	err := uc.ReportLocation(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrLocationUnavailable))
	enrollments.AssertNotCalled(t, "ReportLocation", mock.Anything, mock.Anything, mock.Anything)
}

func TestTourDetailUseCase_Close_DiscardsLateResults(t *testing.T) {
	tours, enrollments, location := newDetailMocks()
	tours.On("GetTour", mock.Anything, "tour-1").
		Return(detailTour(), nil).
		Run(func(args mock.Arguments) { time.Sleep(30 * time.Millisecond) })
	enrollments.On("ListEnrollments", mock.Anything).
		Return([]domain.Enrollment{{ID: "enr-1", TourID: "tour-1"}}, nil).
		Run(func(args mock.Arguments) { time.Sleep(30 * time.Millisecond) })
	location.On("RequestPermission", mock.Anything).
		Return(true, nil).
		Run(func(args mock.Arguments) { time.Sleep(30 * time.Millisecond) })
	location.On("CurrentLocation", mock.Anything).Return(domain.Location{Lat: 40.0, Lng: -74.0}, nil)

	uc := usecase.NewTourDetailUseCase("tour-1", tours, enrollments, location, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		uc.Load(context.Background())
	}()

	uc.Close()
	wg.Wait()

	// Все результаты пришли после Close и были отброшены.
	state := uc.State()
	assert.Equal(t, usecase.PhaseLoading, state.Phase)
	assert.Nil(t, state.Tour)
	assert.False(t, state.IsEnrolled)
	assert.Equal(t, usecase.LocationPending, state.Location)
}
