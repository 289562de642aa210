// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference is the vehicle-proximity subscription state embedded in a user record.
type NotificationPreference struct {
	Enabled        bool       `json:"enabled"`                    // Whether proximity notifications are active.
	RadiusKm       float64    `json:"radius_km"`                  // Search radius in kilometers. Must be > 0 while enabled.
	LastNotifiedAt *time.Time `json:"last_notified_at,omitempty"` // When the user last received a proximity notification.
}

// User represents a registered citizen or driver account.
type User struct {
	ID             uuid.UUID              `json:"id"`
	Email          string                 `json:"email"`
	Name           string                 `json:"name"`
	Role           string                 `json:"role"` // citizen, driver or admin.
	PasswordHash   string                 `json:"-"`
	HomeCoordinate *Coordinate            `json:"home_coordinate,omitempty"` // Nil until the user shares a location.
	Preference     NotificationPreference `json:"notification_preference"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
