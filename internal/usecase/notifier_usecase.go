package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityCheck is the result of an on-demand nearby-vehicle check.
type ProximityCheck struct {
	IsNearby                bool                    `json:"is_nearby"`
	NearestVehicle          *entity.VehicleLocation `json:"nearest_vehicle,omitempty"`
	EstimatedArrivalMinutes int                     `json:"estimated_arrival_minutes,omitempty"`
}

// SweepResult aggregates the outcome of one proximity sweep run.
type SweepResult struct {
	UsersChecked      int `json:"users_checked"`
	UsersSkipped      int `json:"users_skipped"` // Inside the suppression window.
	NotificationsSent int `json:"notifications_sent"`
	Failures          int `json:"failures"`
}

// NotifierUsecase drives vehicle-proximity notifications.
type NotifierUsecase interface {
	// CheckAndNotify is the read-only on-demand variant: it reports whether a
	// collection vehicle is currently within the user's radius without
	// storing a notification or touching the suppression window. Collaborator
	// failures and missing home coordinates surface as a not-nearby result.
	CheckAndNotify(ctx context.Context, userID uuid.UUID) (*ProximityCheck, error)

	// RunSweep checks every subscribed user outside the suppression window,
	// stores and publishes a notification for each user with a collection
	// vehicle in range, and reports aggregate counts. One user's failure
	// never aborts the sweep.
	RunSweep(ctx context.Context) (*SweepResult, error)
}
