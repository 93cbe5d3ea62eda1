package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	OwnerID uuid.UUID
	Type    string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Owner tokens are issued by the account service; this side only needs to verify them.
type TokenService interface {
	// GenerateAccessToken creates an access token for an owner.
	GenerateAccessToken(ownerID uuid.UUID) (string, error)

	// ValidateAccessToken checks the signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
