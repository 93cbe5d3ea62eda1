// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"jelpi/config"
	"jelpi/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the SecretHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It reads the cost from config and returns the implementation as a service.SecretHasher interface.
func NewBcryptHasher(cfg *config.Config) service.SecretHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost. Out-of-range costs fall back to the default.
func NewBcryptHasherWithCost(cost int) service.SecretHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash of the secret using bcrypt.
// Activation codes are compared case-insensitively, so they are hashed upper-cased.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	secret = canonicalSecret(secret)
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	secret = canonicalSecret(secret)
	if secret == "" || hash == "" {
		return false
	}

	// err is nil if the secret and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

func canonicalSecret(secret string) string {
	return strings.ToUpper(strings.TrimSpace(secret))
}
