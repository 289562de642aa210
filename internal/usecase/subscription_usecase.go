package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase manages a user's vehicle-proximity subscription.
type SubscriptionUsecase interface {
	// Subscribe enables proximity notifications with the given radius.
	// A radius <= 0 is rejected; a radius of exactly 0 selects the
	// configured default before validation.
	Subscribe(ctx context.Context, userID uuid.UUID, radiusKm float64) (*entity.NotificationPreference, error)

	// Unsubscribe disables notifications but preserves the chosen radius
	// for a later re-subscription.
	Unsubscribe(ctx context.Context, userID uuid.UUID) error

	// GetPreference returns the user's current subscription state.
	GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// SetHomeCoordinate stores the coordinate proximity checks run from.
	SetHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error

	// GenerateSubscriptionQR renders a PNG QR code with a subscribe deep link.
	GenerateSubscriptionQR(ctx context.Context) ([]byte, error)
}
