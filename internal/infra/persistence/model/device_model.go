package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// The primary key is the identifier printed on the tag.
type DeviceModel struct {
	ID                 string     `gorm:"type:varchar(32);primaryKey"`
	Class              string     `gorm:"type:varchar(16);not null"`
	Status             string     `gorm:"type:varchar(16);not null;default:inactive;index"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProfileID          *uuid.UUID `gorm:"type:uuid"`
	ProfileType        int        `gorm:"not null;default:0"`
	PublicURL          string     `gorm:"type:varchar(255)"`
	ActivationCodeHash string     `gorm:"type:varchar(255);not null"`
	Name               string     `gorm:"type:varchar(255)"`
	ActivatedAt        *time.Time
	LastScannedAt      *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
