// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a push-capable device registered by a user.
type UserDevice struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID `json:"user_id"`     // The ID of the owning user.
	FCMToken   string    `json:"fcm_token"`   // Firebase Cloud Messaging registration token.
	DeviceID   string    `json:"device_id"`   // Client-provided hardware identifier.
	Platform   string    `json:"platform"`    // ios, android or web.
	IsActive   bool      `json:"is_active"`   // Inactive devices are excluded from push delivery.
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
}
