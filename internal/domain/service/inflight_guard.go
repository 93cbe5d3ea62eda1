package service

import "context"

// InFlightGuard admits at most one holder per key at a time.
type InFlightGuard interface {
	// Acquire claims key. It fails with ErrOperationInFlight when another holder has it.
	// The returned release func is safe to call more than once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
