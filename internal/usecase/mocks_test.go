package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tourguide-client/internal/domain"
)

// MockTourGateway is a mock of repository.TourGateway
type MockTourGateway struct {
	mock.Mock
}

func (m *MockTourGateway) ListTours(ctx context.Context, category string) ([]domain.TourSummary, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourSummary), args.Error(1)
}

func (m *MockTourGateway) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

// MockEnrollmentGateway is a mock of repository.EnrollmentGateway
type MockEnrollmentGateway struct {
	mock.Mock
}

func (m *MockEnrollmentGateway) ListEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentGateway) Enroll(ctx context.Context, tourID string) (*domain.Enrollment, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentGateway) ReportLocation(ctx context.Context, tourID string, loc domain.Location) error {
	args := m.Called(ctx, tourID, loc)
	return args.Error(0)
}

// MockLocationProvider is a mock of repository.LocationProvider
type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) RequestPermission(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationProvider) CurrentLocation(ctx context.Context) (domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Location), args.Error(1)
}

// MockAuthGateway is a mock of repository.AuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Signup(ctx context.Context, name, email, password string) (*domain.AuthGrant, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthGrant), args.Error(1)
}

func (m *MockAuthGateway) Login(ctx context.Context, email, password string) (*domain.AuthGrant, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthGrant), args.Error(1)
}

func (m *MockAuthGateway) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCredentialStore is a mock of repository.CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialStore) User(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockCredentialStore) Save(ctx context.Context, token string, user *domain.User) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

func (m *MockCredentialStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
