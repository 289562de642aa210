package impl

import (
	"context"
	"testing"

	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	mockrepo "wastefleet/internal/mocks/repository"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterDevice(t *testing.T) {
	deviceRepo := new(mockrepo.MockDeviceRepository)
	svc := NewDeviceService(deviceRepo, testLogger())
	userID := uuid.New()

	var stored *entity.UserDevice
	deviceRepo.On("CreateDevice", mock.Anything, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.UserDevice)
		}).
		Return(nil)

	device, err := svc.RegisterDevice(context.Background(), userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", stored.FCMToken)
	assert.Equal(t, "android", stored.Platform)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, uuid.Nil, stored.ID)
}

func TestRemoveDevice(t *testing.T) {
	deviceRepo := new(mockrepo.MockDeviceRepository)
	svc := NewDeviceService(deviceRepo, testLogger())
	userID := uuid.New()
	deviceID := uuid.New()

	deviceRepo.On("FindDevicesByUser", mock.Anything, userID).
		Return([]*entity.UserDevice{{ID: deviceID, UserID: userID}}, nil)
	deviceRepo.On("DeleteDevice", mock.Anything, deviceID).Return(nil)

	require.NoError(t, svc.RemoveDevice(context.Background(), userID, deviceID))
	deviceRepo.AssertExpectations(t)
}

func TestRemoveDevice_NotOwned(t *testing.T) {
	deviceRepo := new(mockrepo.MockDeviceRepository)
	svc := NewDeviceService(deviceRepo, testLogger())
	userID := uuid.New()

	deviceRepo.On("FindDevicesByUser", mock.Anything, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID}}, nil)

	err := svc.RemoveDevice(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	deviceRepo.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
}
