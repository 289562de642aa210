package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo carries the fields a client submits when registering a device.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages the push-capable devices of a user.
type DeviceUsecase interface {
	// RegisterDevice records a device for push delivery.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevices lists the user's active devices.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice unregisters a device, verifying ownership.
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
