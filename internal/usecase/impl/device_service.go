package impl

import (
	"context"
	"log/slog"
	"time"

	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/errors"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
)

// DeviceService implements usecase.DeviceUsecase.
type DeviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService is the constructor for DeviceService.
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &DeviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice records a device for push delivery.
func (s *DeviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	now := time.Now()
	device := &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		FCMToken:   info.FCMToken,
		DeviceID:   info.DeviceID,
		Platform:   info.Platform,
		IsActive:   true,
		LastSeenAt: now,
		CreatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	s.logger.Info("device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", info.Platform),
	)

	return device, nil
}

// GetUserDevices lists the user's active devices.
func (s *DeviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// RemoveDevice unregisters a device, verifying ownership.
func (s *DeviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to verify device ownership")
	}

	owned := false
	for _, device := range devices {
		if device.ID == deviceID {
			owned = true

			break
		}
	}
	if !owned {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
