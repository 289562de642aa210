package impl

import (
	"context"
	"testing"
	"time"

	"wastefleet/config"
	"wastefleet/internal/domain/entity"
	mockrepo "wastefleet/internal/mocks/repository"
	mockservice "wastefleet/internal/mocks/service"
	mockusecase "wastefleet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sweepTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Sweep = &config.SweepConfig{
		SuppressionWindow: 60 * time.Minute,
		AssumedSpeedKmh:   20,
		DefaultRadiusKm:   1,
		MaxRadiusKm:       10,
		Concurrency:       4,
		NotificationTTL:   24 * time.Hour,
	}

	return cfg
}

func subscribedUser(radiusKm float64, lastNotified *time.Time) *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Email:          "citizen@example.com",
		Role:           "citizen",
		HomeCoordinate: &entity.Coordinate{Latitude: 18.5204, Longitude: 73.8567},
		Preference: entity.NotificationPreference{
			Enabled:        true,
			RadiusKm:       radiusKm,
			LastNotifiedAt: lastNotified,
		},
	}
}

func nearbyCollectionVehicle(distanceKm float64) *entity.VehicleLocation {
	vehicle := activeVehicle(entity.VehicleTypeCollection, 18.5300, 73.8600)
	vehicle.DistanceKm = distanceKm

	return vehicle
}

func TestCheckAndNotify_VehicleNearby(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, *user.HomeCoordinate, 2.0, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(1.12)}, nil)

	svc := NewNotifierService(userRepo, new(mockrepo.MockNotificationRepository), locator,
		new(mockservice.MockEventPublisher), sweepTestConfig(), testLogger())

	check, err := svc.CheckAndNotify(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, check.IsNearby)
	require.NotNil(t, check.NearestVehicle)

	// 1.12 km at 20 km/h is 3.36 minutes, rounded to 3.
	assert.Equal(t, 3, check.EstimatedArrivalMinutes)
}

func TestCheckAndNotify_MissingHomeCoordinate(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)
	user.HomeCoordinate = nil

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)

	locator := new(mockusecase.MockLocatorUsecase)

	svc := NewNotifierService(userRepo, new(mockrepo.MockNotificationRepository), locator,
		new(mockservice.MockEventPublisher), sweepTestConfig(), testLogger())

	check, err := svc.CheckAndNotify(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, check.IsNearby)
	locator.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAndNotify_CollaboratorFailureIsNotNearby(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("fleet store unavailable"))

	svc := NewNotifierService(userRepo, new(mockrepo.MockNotificationRepository), locator,
		new(mockservice.MockEventPublisher), sweepTestConfig(), testLogger())

	check, err := svc.CheckAndNotify(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, check.IsNearby)
}

func TestCheckAndNotify_DoesNotWriteAnything(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByID", mock.Anything, user.ID).Return(user, nil)

	notificationRepo := new(mockrepo.MockNotificationRepository)
	publisher := new(mockservice.MockEventPublisher)

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(0.5)}, nil)

	svc := NewNotifierService(userRepo, notificationRepo, locator, publisher, sweepTestConfig(), testLogger())

	check, err := svc.CheckAndNotify(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, check.IsNearby)

	// The on-demand check never stores notifications or touches the
	// suppression timestamp.
	notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishProximityEvent", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "UpdateLastNotifiedAt", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunSweep_NotifiesEligibleUser(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil)
	userRepo.On("UpdateLastNotifiedAt", mock.Anything, user.ID, mock.Anything).Return(nil)

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, *user.HomeCoordinate, 2.0, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(1.12)}, nil)

	var stored *entity.Notification
	notificationRepo := new(mockrepo.MockNotificationRepository)
	notificationRepo.On("CreateNotification", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.Notification)
		}).
		Return(nil)

	publisher := new(mockservice.MockEventPublisher)
	publisher.On("PublishProximityEvent", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotifierService(userRepo, notificationRepo, locator, publisher, sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.UsersChecked)
	assert.Equal(t, 0, result.UsersSkipped)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.Equal(t, 0, result.Failures)

	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, entity.NotificationTypeVehicle, stored.Type)
	assert.Equal(t, "Waste Collection Vehicle Nearby", stored.Title)
	assert.Contains(t, stored.Message, "about 3 minutes away")
	require.NotNil(t, stored.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *stored.ExpiresAt, time.Minute)

	userRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRunSweep_TimestampWriteFailureIsCounted(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil)
	userRepo.On("UpdateLastNotifiedAt", mock.Anything, user.ID, mock.Anything).
		Return(errors.New("user store write failed"))

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, *user.HomeCoordinate, 2.0, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(1.12)}, nil)

	notificationRepo := new(mockrepo.MockNotificationRepository)
	notificationRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)

	publisher := new(mockservice.MockEventPublisher)
	publisher.On("PublishProximityEvent", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotifierService(userRepo, notificationRepo, locator, publisher, sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.NoError(t, err)

	// The notification went out, but the stale suppression timestamp must be
	// visible to operators as a failure.
	assert.Equal(t, 1, result.UsersChecked)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.Equal(t, 1, result.Failures)
}

func TestRunSweep_SuppressionWindowSkipsUser(t *testing.T) {
	t.Parallel()

	recentlyNotified := time.Now().Add(-30 * time.Minute)
	user := subscribedUser(2, &recentlyNotified)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil)

	locator := new(mockusecase.MockLocatorUsecase)

	svc := NewNotifierService(userRepo, new(mockrepo.MockNotificationRepository), locator,
		new(mockservice.MockEventPublisher), sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.UsersChecked)
	assert.Equal(t, 1, result.UsersSkipped)
	assert.Equal(t, 0, result.NotificationsSent)

	// The suppression window is checked before any fleet lookup.
	locator.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunSweep_ElapsedWindowNotifiesAgain(t *testing.T) {
	t.Parallel()

	longAgo := time.Now().Add(-2 * time.Hour)
	user := subscribedUser(2, &longAgo)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil)
	userRepo.On("UpdateLastNotifiedAt", mock.Anything, user.ID, mock.Anything).Return(nil)

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(0.8)}, nil)

	notificationRepo := new(mockrepo.MockNotificationRepository)
	notificationRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)

	publisher := new(mockservice.MockEventPublisher)
	publisher.On("PublishProximityEvent", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotifierService(userRepo, notificationRepo, locator, publisher, sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsSent)
}

func TestRunSweep_BackToBackSweepsNotifyOnce(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil).Once()
	userRepo.On("UpdateLastNotifiedAt", mock.Anything, user.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			at := args.Get(2).(time.Time)
			user.Preference.LastNotifiedAt = &at
		}).
		Return(nil)

	// The second sweep sees the timestamp written by the first.
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil).Once()

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(0.5)}, nil)

	notificationRepo := new(mockrepo.MockNotificationRepository)
	notificationRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)

	publisher := new(mockservice.MockEventPublisher)
	publisher.On("PublishProximityEvent", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotifierService(userRepo, notificationRepo, locator, publisher, sweepTestConfig(), testLogger())

	first, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.NotificationsSent)

	second, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.NotificationsSent)
	assert.Equal(t, 1, second.UsersSkipped)

	notificationRepo.AssertNumberOfCalls(t, "CreateNotification", 1)
}

func TestRunSweep_PerUserFailureIsolation(t *testing.T) {
	t.Parallel()

	failing := subscribedUser(2, nil)
	healthy := subscribedUser(3, nil)
	healthy.HomeCoordinate = &entity.Coordinate{Latitude: 18.6000, Longitude: 73.9000}

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{failing, healthy}, nil)
	userRepo.On("UpdateLastNotifiedAt", mock.Anything, healthy.ID, mock.Anything).Return(nil)

	locator := new(mockusecase.MockLocatorUsecase)
	locator.On("FindNearby", mock.Anything, *failing.HomeCoordinate, 2.0, mock.Anything).
		Return(nil, errors.New("fleet store unavailable"))
	locator.On("FindNearby", mock.Anything, *healthy.HomeCoordinate, 3.0, mock.Anything).
		Return([]*entity.VehicleLocation{nearbyCollectionVehicle(1.5)}, nil)

	notificationRepo := new(mockrepo.MockNotificationRepository)
	notificationRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)

	publisher := new(mockservice.MockEventPublisher)
	publisher.On("PublishProximityEvent", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotifierService(userRepo, notificationRepo, locator, publisher, sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.UsersChecked)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.Equal(t, 1, result.Failures)
}

func TestRunSweep_UserWithoutHomeCoordinate(t *testing.T) {
	t.Parallel()

	user := subscribedUser(2, nil)
	user.HomeCoordinate = nil

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return([]*entity.User{user}, nil)

	svc := NewNotifierService(userRepo, new(mockrepo.MockNotificationRepository),
		new(mockusecase.MockLocatorUsecase), new(mockservice.MockEventPublisher),
		sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.UsersChecked)
	assert.Equal(t, 0, result.NotificationsSent)
	assert.Equal(t, 0, result.Failures)
}

func TestRunSweep_ListFailureAbortsJob(t *testing.T) {
	t.Parallel()

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("ListUsersWithNotificationsEnabled", mock.Anything).
		Return(nil, errors.New("connection refused"))

	svc := NewNotifierService(userRepo, new(mockrepo.MockNotificationRepository),
		new(mockusecase.MockLocatorUsecase), new(mockservice.MockEventPublisher),
		sweepTestConfig(), testLogger())

	result, err := svc.RunSweep(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
}
