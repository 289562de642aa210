package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// FleetUsecase defines fleet-side operations performed by drivers.
type FleetUsecase interface {
	// UpdateVehicleLocation persists a new position report for a vehicle
	// and refreshes the live position cache.
	UpdateVehicleLocation(ctx context.Context, vehicleID uuid.UUID, coordinate entity.Coordinate) (*entity.VehicleLocation, error)
}
