// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"
	"wastefleet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for stored-notification database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a single notification.
	// Returns ErrNotificationNotFound when no record exists.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByUser retrieves notifications for a user, newest first.
	// A limit of 0 means no limit; unreadOnly restricts to unread records.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]*entity.Notification, error)

	// CountUnreadByUser returns the number of unread notifications for a user.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every unread notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// DeleteNotification removes a notification by its ID.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// ListExpired retrieves notifications whose expiry is at or before now.
	ListExpired(ctx context.Context, now time.Time) ([]*entity.Notification, error)
}
