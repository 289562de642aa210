package repository

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFleetRepository is a testify mock for repository.FleetRepository.
type MockFleetRepository struct {
	mock.Mock
}

func (m *MockFleetRepository) ListActiveVehicles(ctx context.Context) ([]*entity.VehicleLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.VehicleLocation), args.Error(1)
}

func (m *MockFleetRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.VehicleLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.VehicleLocation), args.Error(1)
}

func (m *MockFleetRepository) UpdateVehicleLocation(ctx context.Context, id uuid.UUID, coordinate entity.Coordinate, at time.Time) error {
	args := m.Called(ctx, id, coordinate, at)

	return args.Error(0)
}
