package service

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// VehiclePosition is a cached live position report.
type VehiclePosition struct {
	Coordinate entity.Coordinate `json:"coordinate"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// FleetCache defines the live vehicle position cache.
// Positions are written on every driver report and read by the locator to
// overlay fresher coordinates on top of the persisted fleet records.
type FleetCache interface {
	// SetPosition stores the latest position for a vehicle.
	SetPosition(ctx context.Context, vehicleID uuid.UUID, position VehiclePosition) error

	// GetPosition returns the cached position, or nil when absent or expired.
	GetPosition(ctx context.Context, vehicleID uuid.UUID) (*VehiclePosition, error)

	// Close releases the underlying connection.
	Close() error
}
