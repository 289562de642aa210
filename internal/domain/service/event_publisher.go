package service

import (
	"context"
)

// ProximityEvent represents a vehicle-proximity notification to be delivered by the sweeper worker.
type ProximityEvent struct {
	RequestID        string  `json:"request_id,omitempty"` // For distributed tracing
	NotificationID   string  `json:"notification_id"`
	UserID           string  `json:"user_id"`
	VehicleID        string  `json:"vehicle_id"`
	VehicleType      string  `json:"vehicle_type"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishProximityEvent publishes a proximity event for async push delivery.
	PublishProximityEvent(ctx context.Context, event *ProximityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
