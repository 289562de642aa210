package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleLocationModel is the GORM-specific struct for the 'vehicle_locations' table.
// It holds the latest reported position and metadata of a fleet vehicle.
type VehicleLocationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VehicleID   string     `gorm:"type:varchar(50);not null;unique"`
	DriverID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverName  string     `gorm:"type:varchar(100)"`
	Latitude    float64    `gorm:"type:decimal(10,8);not null"`
	Longitude   float64    `gorm:"type:decimal(11,8);not null"`
	Status      string     `gorm:"type:varchar(20);not null;default:'inactive';index"`
	VehicleType string     `gorm:"type:varchar(20);not null;default:'collection'"`
	RouteID     *uuid.UUID `gorm:"type:uuid"`
	RouteName   string     `gorm:"type:varchar(100)"`
	LastUpdated time.Time  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleLocationModel) TableName() string {
	return "vehicle_locations"
}
