// Package usecase provides hand-written mocks for the usecase interfaces.
package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"
	domainusecase "wastefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLocatorUsecase is a testify mock for usecase.LocatorUsecase.
type MockLocatorUsecase struct {
	mock.Mock
}

var _ domainusecase.LocatorUsecase = (*MockLocatorUsecase)(nil)

func (m *MockLocatorUsecase) FindNearby(ctx context.Context, origin entity.Coordinate, radiusKm float64, vehicleType *entity.VehicleType) ([]*entity.VehicleLocation, error) {
	args := m.Called(ctx, origin, radiusKm, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.VehicleLocation), args.Error(1)
}

// MockNotifierUsecase is a testify mock for usecase.NotifierUsecase.
type MockNotifierUsecase struct {
	mock.Mock
}

var _ domainusecase.NotifierUsecase = (*MockNotifierUsecase)(nil)

func (m *MockNotifierUsecase) CheckAndNotify(ctx context.Context, userID uuid.UUID) (*domainusecase.ProximityCheck, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainusecase.ProximityCheck), args.Error(1)
}

func (m *MockNotifierUsecase) RunSweep(ctx context.Context) (*domainusecase.SweepResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainusecase.SweepResult), args.Error(1)
}

// MockFleetUsecase is a testify mock for usecase.FleetUsecase.
type MockFleetUsecase struct {
	mock.Mock
}

var _ domainusecase.FleetUsecase = (*MockFleetUsecase)(nil)

func (m *MockFleetUsecase) UpdateVehicleLocation(ctx context.Context, vehicleID uuid.UUID, coordinate entity.Coordinate) (*entity.VehicleLocation, error) {
	args := m.Called(ctx, vehicleID, coordinate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.VehicleLocation), args.Error(1)
}

// MockSubscriptionUsecase is a testify mock for usecase.SubscriptionUsecase.
type MockSubscriptionUsecase struct {
	mock.Mock
}

var _ domainusecase.SubscriptionUsecase = (*MockSubscriptionUsecase)(nil)

func (m *MockSubscriptionUsecase) Subscribe(ctx context.Context, userID uuid.UUID, radiusKm float64) (*entity.NotificationPreference, error) {
	args := m.Called(ctx, userID, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.NotificationPreference), args.Error(1)
}

func (m *MockSubscriptionUsecase) Unsubscribe(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *MockSubscriptionUsecase) GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.NotificationPreference), args.Error(1)
}

func (m *MockSubscriptionUsecase) SetHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error {
	args := m.Called(ctx, userID, coordinate)

	return args.Error(0)
}

func (m *MockSubscriptionUsecase) GenerateSubscriptionQR(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockNotificationUsecase is a testify mock for usecase.NotificationUsecase.
type MockNotificationUsecase struct {
	mock.Mock
}

var _ domainusecase.NotificationUsecase = (*MockNotificationUsecase)(nil)

func (m *MockNotificationUsecase) ListByUser(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *MockNotificationUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	args := m.Called(ctx, userID, notificationID)

	return args.Error(0)
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *MockNotificationUsecase) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	args := m.Called(ctx, userID, notificationID)

	return args.Error(0)
}

func (m *MockNotificationUsecase) ExpireNotifications(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}
