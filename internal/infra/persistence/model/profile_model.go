package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Kind is the discriminator of the JSON payload; the payload is stored as-is.
type ProfileModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DeviceID  string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Kind      int            `gorm:"not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
