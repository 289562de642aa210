// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"
	"wastefleet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for fleet persistence.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// FleetRepository defines the interface for fleet-tracking database operations.
type FleetRepository interface {
	// ListActiveVehicles retrieves every vehicle with active status.
	ListActiveVehicles(ctx context.Context) ([]*entity.VehicleLocation, error)

	// FindVehicleByID retrieves a single vehicle tracking record.
	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.VehicleLocation, error)

	// UpdateVehicleLocation persists a new position and last-updated timestamp.
	UpdateVehicleLocation(ctx context.Context, id uuid.UUID, coordinate entity.Coordinate, at time.Time) error
}
