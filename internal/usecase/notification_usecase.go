package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the notification inbox and expiry operations.
type NotificationUsecase interface {
	// ListByUser retrieves a user's notifications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read, verifying ownership.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification, verifying ownership.
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error

	// ExpireNotifications deletes all notifications whose expiry has passed
	// and returns the number actually removed. Idempotent; a single failed
	// delete does not block the rest.
	ExpireNotifications(ctx context.Context) (int, error)
}
