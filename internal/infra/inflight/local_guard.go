// Package inflight keeps mutating device operations from overlapping.
package inflight

import (
	"context"
	"sync"

	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/service"
)

// localGuard admits one holder per key within a single process.
type localGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalGuard returns an in-process guard.
func NewLocalGuard() service.InFlightGuard {
	return &localGuard{held: make(map[string]struct{})}
}

func (g *localGuard) Acquire(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, domainerrors.ErrOperationInFlight.WithDetails("key " + key + " is held")
	}
	g.held[key] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
