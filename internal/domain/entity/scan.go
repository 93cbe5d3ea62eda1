package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ScanEvent records one public read of a tag.
type ScanEvent struct {
	DeviceID  string     `json:"device_id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	ScannedAt time.Time  `json:"scanned_at"`
	Location  *orb.Point `json:"location,omitempty"` // Longitude, latitude as reported by the scanning browser.
}

// ValidLocation reports whether p is a WGS84 longitude/latitude pair.
func ValidLocation(p orb.Point) bool {
	return p.Lon() >= -180 && p.Lon() <= 180 && p.Lat() >= -90 && p.Lat() <= 90
}
