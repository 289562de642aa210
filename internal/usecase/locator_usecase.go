// Package usecase defines the application-level interfaces of the service.
package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"
)

// LocatorUsecase defines the nearby-vehicle query interface.
type LocatorUsecase interface {
	// FindNearby returns the active vehicles within radiusKm of origin,
	// annotated with their distance and sorted nearest first. A nil
	// vehicleType matches every type. An empty fleet yields an empty
	// slice, not an error.
	FindNearby(ctx context.Context, origin entity.Coordinate, radiusKm float64, vehicleType *entity.VehicleType) ([]*entity.VehicleLocation, error)
}
