// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a stored notification.
type NotificationType string

// Valid notification types.
const (
	NotificationTypeVehicle     NotificationType = "vehicle"
	NotificationTypeWaste       NotificationType = "waste"
	NotificationTypeSystem      NotificationType = "system"
	NotificationTypeAchievement NotificationType = "achievement"
	NotificationTypeReward      NotificationType = "reward"
)

// Notification represents a stored in-app notification for a single user.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      NotificationType  `json:"type"`
	Read      bool              `json:"read"`
	Data      map[string]string `json:"data,omitempty"`       // Opaque payload specific to the notification type.
	ExpiresAt *time.Time        `json:"expires_at,omitempty"` // After this instant the expiry sweep may delete the record.
	CreatedAt time.Time         `json:"created_at"`
}
