package impl

import (
	"context"
	"log/slog"

	"wastefleet/config"
	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/domain/service"
	"wastefleet/internal/errors"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
)

type subscriptionService struct {
	userRepo repository.UserRepository
	qrcode   service.QRCodeService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance.
func NewSubscriptionService(
	userRepo repository.UserRepository,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		userRepo: userRepo,
		qrcode:   qrcode,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, radiusKm float64) (*entity.NotificationPreference, error) {
	if radiusKm == 0 {
		radiusKm = s.cfg.Sweep.DefaultRadiusKm
	}
	if radiusKm <= 0 || radiusKm > s.cfg.Sweep.MaxRadiusKm {
		return nil, domainerrors.ErrInvalidRadius
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pref := user.Preference
	pref.Enabled = true
	pref.RadiusKm = radiusKm

	if err := s.userRepo.UpdateNotificationPreference(ctx, userID, pref); err != nil {
		return nil, errors.Wrap(err, "failed to update notification preference")
	}

	s.logger.Info("User subscribed to vehicle notifications",
		slog.String("user_id", userID.String()),
		slog.Float64("radius_km", radiusKm),
	)

	return &pref, nil
}

// Unsubscribe disables notifications without touching the radius, so a later
// re-subscription picks up where the user left off.
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	if !user.Preference.Enabled {
		return domainerrors.ErrNotSubscribed
	}

	pref := user.Preference
	pref.Enabled = false

	if err := s.userRepo.UpdateNotificationPreference(ctx, userID, pref); err != nil {
		return errors.Wrap(err, "failed to update notification preference")
	}

	return nil
}

func (s *subscriptionService) GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pref := user.Preference

	return &pref, nil
}

func (s *subscriptionService) SetHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.UpdateHomeCoordinate(ctx, userID, coordinate); err != nil {
		return errors.Wrap(err, "failed to update home coordinate")
	}

	return nil
}

func (s *subscriptionService) GenerateSubscriptionQR(ctx context.Context) ([]byte, error) {
	png, err := s.qrcode.GeneratePNG(s.cfg.QRCode.BaseURL + "/subscribe")
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscription QR code")
	}

	return png, nil
}

func (s *subscriptionService) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
