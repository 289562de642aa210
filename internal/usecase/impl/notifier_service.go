package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"wastefleet/config"
	"wastefleet/internal/domain/entity"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/domain/service"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notifierService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	locator          usecase.LocatorUsecase
	publisher        service.EventPublisher
	cfg              *config.Config
	logger           *slog.Logger
}

// NewNotifierService creates a new proximity notifier instance.
func NewNotifierService(
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	locator usecase.LocatorUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotifierUsecase {
	return &notifierService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		locator:          locator,
		publisher:        publisher,
		cfg:              cfg,
		logger:           logger,
	}
}

// CheckAndNotify reports whether a collection vehicle is currently within the
// user's radius. It never writes the suppression timestamp and never stores a
// notification; a missing home coordinate or a collaborator failure yields a
// not-nearby result rather than an error, since absence of data is the safe
// default for this feature.
func (s *notifierService) CheckAndNotify(ctx context.Context, userID uuid.UUID) (*usecase.ProximityCheck, error) {
	notNearby := &usecase.ProximityCheck{IsNearby: false}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Proximity check could not load user",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return notNearby, nil
	}

	if user.HomeCoordinate == nil {
		// Expected state for new users, not an error.
		return notNearby, nil
	}

	radiusKm := user.Preference.RadiusKm
	if radiusKm <= 0 {
		radiusKm = s.cfg.Sweep.DefaultRadiusKm
	}

	nearest, err := s.findNearestCollectionVehicle(ctx, *user.HomeCoordinate, radiusKm)
	if err != nil {
		s.logger.Warn("Proximity check fleet lookup failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return notNearby, nil
	}
	if nearest == nil {
		return notNearby, nil
	}

	return &usecase.ProximityCheck{
		IsNearby:                true,
		NearestVehicle:          nearest,
		EstimatedArrivalMinutes: s.estimateArrivalMinutes(nearest.DistanceKm),
	}, nil
}

// RunSweep checks every subscribed user and emits at most one stored
// notification per user per suppression window. Per-user attempts are fanned
// out on a bounded pool; a single user's failure never aborts the sweep.
func (s *notifierService) RunSweep(ctx context.Context) (*usecase.SweepResult, error) {
	users, err := s.userRepo.ListUsersWithNotificationsEnabled(ctx)
	if err != nil {
		// Not even the subscriber list is available; this is a job-level
		// failure the scheduler should see.
		return nil, errors.Wrap(err, "failed to list subscribed users")
	}

	now := time.Now()
	result := &usecase.SweepResult{}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	sem := make(chan struct{}, s.cfg.Sweep.Concurrency)

	for _, user := range users {
		// The suppression check is local; skipping here avoids a fleet
		// lookup for users who cannot be notified anyway.
		if s.withinSuppressionWindow(user, now) {
			result.UsersSkipped++

			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(user *entity.User) {
			defer wg.Done()
			defer func() { <-sem }()

			sent, err := s.notifyUser(ctx, user, now)

			mu.Lock()
			defer mu.Unlock()
			result.UsersChecked++
			// A notification can be stored and still leave a failure behind,
			// e.g. when the suppression timestamp could not be written.
			if sent {
				result.NotificationsSent++
			}
			if err != nil {
				result.Failures++
			}
		}(user)
	}

	wg.Wait()

	s.logger.Info("Proximity sweep completed",
		slog.Int("users_checked", result.UsersChecked),
		slog.Int("users_skipped", result.UsersSkipped),
		slog.Int("notifications_sent", result.NotificationsSent),
		slog.Int("failures", result.Failures),
	)

	return result, nil
}

func (s *notifierService) withinSuppressionWindow(user *entity.User, now time.Time) bool {
	last := user.Preference.LastNotifiedAt

	return last != nil && now.Sub(*last) < s.cfg.Sweep.SuppressionWindow
}

// notifyUser performs one user's sweep attempt. It reports whether a
// notification was stored; errors are scoped to this user only.
func (s *notifierService) notifyUser(ctx context.Context, user *entity.User, now time.Time) (bool, error) {
	if user.HomeCoordinate == nil {
		return false, nil
	}

	radiusKm := user.Preference.RadiusKm
	if radiusKm <= 0 {
		radiusKm = s.cfg.Sweep.DefaultRadiusKm
	}

	nearest, err := s.findNearestCollectionVehicle(ctx, *user.HomeCoordinate, radiusKm)
	if err != nil {
		s.logger.Warn("Sweep fleet lookup failed",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)

		return false, err
	}
	if nearest == nil {
		return false, nil
	}

	minutes := s.estimateArrivalMinutes(nearest.DistanceKm)
	title, message := proximityContent(nearest.VehicleType, minutes)
	expiresAt := now.Add(s.cfg.Sweep.NotificationTTL)

	notification := &entity.Notification{
		ID:      uuid.New(),
		UserID:  user.ID,
		Title:   title,
		Message: message,
		Type:    entity.NotificationTypeVehicle,
		Data: map[string]string{
			"vehicle_id":        nearest.ID.String(),
			"vehicle_type":      string(nearest.VehicleType),
			"estimated_minutes": strconv.Itoa(minutes),
			"distance_km":       strconv.FormatFloat(nearest.DistanceKm, 'f', 3, 64),
			"latitude":          strconv.FormatFloat(nearest.Coordinate.Latitude, 'f', -1, 64),
			"longitude":         strconv.FormatFloat(nearest.Coordinate.Longitude, 'f', -1, 64),
		},
		ExpiresAt: &expiresAt,
		CreatedAt: now,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return false, errors.Wrap(err, "failed to create notification")
	}

	// Push delivery is best effort; the stored notification is the record.
	event := &service.ProximityEvent{
		NotificationID:   notification.ID.String(),
		UserID:           user.ID.String(),
		VehicleID:        nearest.ID.String(),
		VehicleType:      string(nearest.VehicleType),
		Latitude:         nearest.Coordinate.Latitude,
		Longitude:        nearest.Coordinate.Longitude,
		DistanceKm:       nearest.DistanceKm,
		EstimatedMinutes: minutes,
		Title:            title,
		Message:          message,
	}
	if err := s.publisher.PublishProximityEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish proximity event",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	if err := s.userRepo.UpdateLastNotifiedAt(ctx, user.ID, now); err != nil {
		// The notification row is the record, but a stale timestamp means the
		// user may be re-notified next sweep; operators see it as a failure.
		s.logger.Warn("Failed to update suppression timestamp",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)

		return true, errors.Wrap(err, "failed to update suppression timestamp")
	}

	return true, nil
}

func (s *notifierService) findNearestCollectionVehicle(ctx context.Context, origin entity.Coordinate, radiusKm float64) (*entity.VehicleLocation, error) {
	collection := entity.VehicleTypeCollection
	vehicles, err := s.locator.FindNearby(ctx, origin, radiusKm, &collection)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, nil
	}

	return vehicles[0], nil
}

func (s *notifierService) estimateArrivalMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / s.cfg.Sweep.AssumedSpeedKmh * 60))
}

// proximityContent builds the notification text for a vehicle type.
func proximityContent(vehicleType entity.VehicleType, minutes int) (title, message string) {
	switch vehicleType {
	case entity.VehicleTypeCollection:
		title = "Waste Collection Vehicle Nearby"
		message = fmt.Sprintf("A waste collection vehicle is about %d minutes away from your location. Please keep your waste ready for collection.", minutes)
	case entity.VehicleTypeRecycling:
		title = "Recycling Vehicle Approaching"
		message = fmt.Sprintf("A recycling vehicle is about %d minutes away. Please sort your recyclables for collection.", minutes)
	default:
		title = "Waste Management Vehicle Nearby"
		message = fmt.Sprintf("A waste management vehicle is about %d minutes away from your location.", minutes)
	}

	return title, message
}
