// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus represents the operational state of a fleet vehicle.
type VehicleStatus string

// Valid vehicle statuses.
const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// VehicleType classifies the role of a fleet vehicle.
type VehicleType string

// Valid vehicle types.
const (
	VehicleTypeCollection VehicleType = "collection"
	VehicleTypeTransport  VehicleType = "transport"
	VehicleTypeRecycling  VehicleType = "recycling"
)

// VehicleLocation represents the tracked position and metadata of a fleet vehicle.
type VehicleLocation struct {
	ID          uuid.UUID     `json:"id"`                     // The Global Unique Identifier (GUID) for the tracking record.
	VehicleID   string        `json:"vehicle_id"`             // The fleet registration number of the vehicle.
	DriverID    uuid.UUID     `json:"driver_id"`              // The ID of the driver currently assigned.
	DriverName  string        `json:"driver_name"`            // Display name of the assigned driver.
	Coordinate  Coordinate    `json:"coordinate"`             // Last reported position.
	Status      VehicleStatus `json:"status"`                 // Operational status (active, inactive, maintenance).
	VehicleType VehicleType   `json:"vehicle_type"`           // Vehicle role (collection, transport, recycling).
	RouteID     *uuid.UUID    `json:"route_id,omitempty"`     // Optional assigned route.
	RouteName   string        `json:"route_name,omitempty"`   // Human-readable route name.
	LastUpdated time.Time     `json:"last_updated"`           // Timestamp of the last position report.
	DistanceKm  float64       `json:"distance_km,omitempty"`  // Distance from the query origin. Recomputed per query, never persisted.
}
