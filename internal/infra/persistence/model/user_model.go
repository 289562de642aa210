package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The vehicle-notification preference is stored inline; a separate table is not
// needed while every user has at most one subscription.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'citizen'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	// Home coordinate used as the origin of proximity queries. Nullable
	// until the user shares a location.
	HomeLatitude  *float64 `gorm:"type:decimal(10,8)"`
	HomeLongitude *float64 `gorm:"type:decimal(11,8)"`

	NotificationEnabled  bool       `gorm:"not null;default:false;index"`
	NotificationRadiusKm float64    `gorm:"type:decimal(10,3);not null;default:1.0"`
	LastNotifiedAt       *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
