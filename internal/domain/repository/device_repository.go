// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wastefleet/internal/domain/entity"
	"wastefleet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for push-device database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device registration.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevicesByUser retrieves all active devices for a single user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDevicesForUsers retrieves all active devices for a list of user IDs.
	// Used for batch fetching devices before push delivery.
	FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice removes a device registration (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
