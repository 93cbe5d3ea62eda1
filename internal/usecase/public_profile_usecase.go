package usecase

import (
	"context"

	"jelpi/internal/domain/display"
	"jelpi/internal/domain/profile"

	"github.com/paulmach/orb"
)

// PublicDevice is the part of a device shown to whoever scans it.
type PublicDevice struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"displayName"`
	Class       display.Icon `json:"class"`
}

// PublicProfile is the response of a tag scan.
type PublicProfile struct {
	Device    PublicDevice `json:"device"`
	KindLabel string       `json:"kindLabel"`
	Card      profile.Card `json:"card"`
}

// PublicProfileUsecase defines the interface for the anonymous scan view
type PublicProfileUsecase interface {
	// ViewProfile renders the card of a linked device and records the scan
	ViewProfile(ctx context.Context, deviceID string, location *orb.Point) (*PublicProfile, error)
}
