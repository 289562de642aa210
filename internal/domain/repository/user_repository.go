// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"
	"wastefleet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when creating a user with an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsersWithNotificationsEnabled retrieves all users whose vehicle
	// notification preference is enabled.
	ListUsersWithNotificationsEnabled(ctx context.Context) ([]*entity.User, error)

	// UpdateNotificationPreference replaces the embedded notification preference.
	UpdateNotificationPreference(ctx context.Context, userID uuid.UUID, pref entity.NotificationPreference) error

	// UpdateLastNotifiedAt records when a proximity notification was last sent.
	UpdateLastNotifiedAt(ctx context.Context, userID uuid.UUID, at time.Time) error

	// UpdateHomeCoordinate stores the coordinate proximity queries run from.
	UpdateHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error
}
