package impl

import (
	"context"
	"testing"

	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	mockrepo "wastefleet/internal/mocks/repository"
	mockservice "wastefleet/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateVehicleLocation_PersistsAndCaches(t *testing.T) {
	t.Parallel()

	vehicle := activeVehicle(entity.VehicleTypeCollection, 18.5300, 73.8600)
	position := entity.Coordinate{Latitude: 18.5310, Longitude: 73.8610}

	fleetRepo := new(mockrepo.MockFleetRepository)
	fleetRepo.On("UpdateVehicleLocation", mock.Anything, vehicle.ID, position, mock.Anything).Return(nil)
	fleetRepo.On("FindVehicleByID", mock.Anything, vehicle.ID).Return(vehicle, nil)

	cache := new(mockservice.MockFleetCache)
	cache.On("SetPosition", mock.Anything, vehicle.ID, mock.Anything).Return(nil)

	svc := NewFleetService(fleetRepo, cache, testLogger())

	updated, err := svc.UpdateVehicleLocation(context.Background(), vehicle.ID, position)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, updated.ID)
	fleetRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdateVehicleLocation_CacheFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	vehicle := activeVehicle(entity.VehicleTypeCollection, 18.5300, 73.8600)
	position := entity.Coordinate{Latitude: 18.5310, Longitude: 73.8610}

	fleetRepo := new(mockrepo.MockFleetRepository)
	fleetRepo.On("UpdateVehicleLocation", mock.Anything, vehicle.ID, position, mock.Anything).Return(nil)
	fleetRepo.On("FindVehicleByID", mock.Anything, vehicle.ID).Return(vehicle, nil)

	cache := new(mockservice.MockFleetCache)
	cache.On("SetPosition", mock.Anything, vehicle.ID, mock.Anything).
		Return(errors.New("redis timeout"))

	svc := NewFleetService(fleetRepo, cache, testLogger())

	updated, err := svc.UpdateVehicleLocation(context.Background(), vehicle.ID, position)
	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestUpdateVehicleLocation_UnknownVehicle(t *testing.T) {
	t.Parallel()

	vehicle := activeVehicle(entity.VehicleTypeCollection, 18.5300, 73.8600)

	fleetRepo := new(mockrepo.MockFleetRepository)
	fleetRepo.On("UpdateVehicleLocation", mock.Anything, vehicle.ID, mock.Anything, mock.Anything).
		Return(repository.ErrVehicleNotFound)

	cache := new(mockservice.MockFleetCache)

	svc := NewFleetService(fleetRepo, cache, testLogger())

	updated, err := svc.UpdateVehicleLocation(context.Background(), vehicle.ID, entity.Coordinate{})
	require.ErrorIs(t, err, domainerrors.ErrVehicleNotFound)
	assert.Nil(t, updated)
	cache.AssertNotCalled(t, "SetPosition", mock.Anything, mock.Anything, mock.Anything)
}
