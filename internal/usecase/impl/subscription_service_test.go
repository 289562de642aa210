package impl

import (
	"context"
	"testing"
	"time"

	"wastefleet/config"
	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	mockrepo "wastefleet/internal/mocks/repository"
	mockservice "wastefleet/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_EnablesWithChosenRadius(t *testing.T) {
	t.Parallel()

	user := subscribedUser(0, nil)
	user.Preference.Enabled = false

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("UpdateNotificationPreference", mock.Anything, user.ID,
		entity.NotificationPreference{Enabled: true, RadiusKm: 2.5}).Return(nil)

	svc := NewSubscriptionService(userRepo, new(mockservice.MockQRCodeService), sweepTestConfig(), testLogger())

	pref, err := svc.Subscribe(context.Background(), user.ID, 2.5)
	require.NoError(t, err)
	assert.True(t, pref.Enabled)
	assert.Equal(t, 2.5, pref.RadiusKm)
	userRepo.AssertExpectations(t)
}

func TestSubscribe_ZeroRadiusSelectsDefault(t *testing.T) {
	t.Parallel()

	user := subscribedUser(0, nil)
	user.Preference.Enabled = false

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("UpdateNotificationPreference", mock.Anything, user.ID,
		entity.NotificationPreference{Enabled: true, RadiusKm: 1}).Return(nil)

	svc := NewSubscriptionService(userRepo, new(mockservice.MockQRCodeService), sweepTestConfig(), testLogger())

	pref, err := svc.Subscribe(context.Background(), user.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pref.RadiusKm)
}

func TestSubscribe_RejectsInvalidRadius(t *testing.T) {
	t.Parallel()

	userRepo := new(mockrepo.MockUserRepository)
	svc := NewSubscriptionService(userRepo, new(mockservice.MockQRCodeService), sweepTestConfig(), testLogger())

	for _, radius := range []float64{-1, -0.001, 11} {
		pref, err := svc.Subscribe(context.Background(), subscribedUser(0, nil).ID, radius)
		require.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
		assert.Nil(t, pref)
	}

	userRepo.AssertNotCalled(t, "UpdateNotificationPreference", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnsubscribe_PreservesRadius(t *testing.T) {
	t.Parallel()

	lastNotified := time.Now().Add(-10 * time.Minute)
	user := subscribedUser(3, &lastNotified)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("UpdateNotificationPreference", mock.Anything, user.ID,
		entity.NotificationPreference{Enabled: false, RadiusKm: 3, LastNotifiedAt: &lastNotified}).
		Return(nil)

	svc := NewSubscriptionService(userRepo, new(mockservice.MockQRCodeService), sweepTestConfig(), testLogger())

	require.NoError(t, svc.Unsubscribe(context.Background(), user.ID))
	userRepo.AssertExpectations(t)
}

func TestUnsubscribe_NotSubscribed(t *testing.T) {
	t.Parallel()

	user := subscribedUser(3, nil)
	user.Preference.Enabled = false

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)

	svc := NewSubscriptionService(userRepo, new(mockservice.MockQRCodeService), sweepTestConfig(), testLogger())

	err := svc.Unsubscribe(context.Background(), user.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotSubscribed)
	userRepo.AssertNotCalled(t, "UpdateNotificationPreference", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateSubscriptionQR(t *testing.T) {
	t.Parallel()

	cfg := sweepTestConfig()
	cfg.QRCode = &config.QRCodeConfig{BaseURL: "https://waste.example.com"}

	qrcode := new(mockservice.MockQRCodeService)
	qrcode.On("GeneratePNG", "https://waste.example.com/subscribe").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	svc := NewSubscriptionService(new(mockrepo.MockUserRepository), qrcode, cfg, testLogger())

	png, err := svc.GenerateSubscriptionQR(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	qrcode.AssertExpectations(t)
}
