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

const defaultInboxLimit = 50

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService creates a new notification inbox service instance.
func NewNotificationService(notificationRepo repository.NotificationRepository, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *notificationService) ListByUser(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultInboxLimit
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, limit, unreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.verifyOwnership(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.verifyOwnership(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// ExpireNotifications removes every notification whose expiry has passed.
// Re-running after a partial failure only deletes what is still present, so
// the job is safe to retry.
func (s *notificationService) ExpireNotifications(ctx context.Context) (int, error) {
	now := time.Now()

	expired, err := s.notificationRepo.ListExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired notifications")
	}

	removed := 0
	for _, notification := range expired {
		if err := s.notificationRepo.DeleteNotification(ctx, notification.ID); err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				// Deleted concurrently, which is the outcome we wanted.
				continue
			}

			s.logger.Warn("Failed to delete expired notification",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		removed++
	}

	if removed > 0 {
		s.logger.Info("Expired notifications removed", slog.Int("count", removed))
	}

	return removed, nil
}

// verifyOwnership confirms the notification exists and belongs to the user.
// A notification owned by someone else is reported as not found so the
// endpoint does not leak its existence.
func (s *notificationService) verifyOwnership(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to load notification")
	}

	if notification.UserID != userID {
		return domainerrors.ErrNotificationNotFound
	}

	return nil
}
