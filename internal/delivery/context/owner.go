package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyOwnerID is the key for storing the authenticated owner in echo.Context.
const KeyOwnerID ContextKey = "owner_id"

// SetOwnerID stores the authenticated owner in echo.Context.
func SetOwnerID(c echo.Context, ownerID uuid.UUID) {
	c.Set(string(KeyOwnerID), ownerID)
}

// GetOwnerID returns the authenticated owner, if the request carried a valid token.
func GetOwnerID(c echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(string(KeyOwnerID)).(uuid.UUID)

	return ownerID, ok && ownerID != uuid.Nil
}
