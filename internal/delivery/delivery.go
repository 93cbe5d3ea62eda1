// Package delivery defines the contract shared by every transport the binaries start.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
