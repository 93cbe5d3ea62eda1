package inflight

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLockTTL = 30 * time.Second

func newTestRedisGuard(t *testing.T) (service.InFlightGuard, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisGuard(rdb, testLockTTL, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestRedisGuard(t *testing.T) {
	ctx := context.Background()
	const deviceID = "ACT-123456"
	lockKey := keyPrefix + deviceID

	tests := []struct {
		name string
		run  func(t *testing.T, guard service.InFlightGuard, mr *miniredis.Miniredis)
	}{
		{
			name: "acquire sets a key with the ttl",
			run: func(t *testing.T, guard service.InFlightGuard, mr *miniredis.Miniredis) {
				release, err := guard.Acquire(ctx, deviceID)
				require.NoError(t, err)
				defer release()

				assert.True(t, mr.Exists(lockKey))
				assert.Equal(t, testLockTTL, mr.TTL(lockKey))
			},
		},
		{
			name: "second acquire is rejected",
			run: func(t *testing.T, guard service.InFlightGuard, _ *miniredis.Miniredis) {
				release, err := guard.Acquire(ctx, deviceID)
				require.NoError(t, err)
				defer release()

				_, err = guard.Acquire(ctx, deviceID)
				require.ErrorIs(t, err, domainerrors.ErrOperationInFlight)

				other, err := guard.Acquire(ctx, "JLP001")
				require.NoError(t, err)
				other()
			},
		},
		{
			name: "release frees the key for the next caller",
			run: func(t *testing.T, guard service.InFlightGuard, mr *miniredis.Miniredis) {
				release, err := guard.Acquire(ctx, deviceID)
				require.NoError(t, err)
				release()
				release()
				assert.False(t, mr.Exists(lockKey))

				again, err := guard.Acquire(ctx, deviceID)
				require.NoError(t, err)
				again()
			},
		},
		{
			name: "expired holder cannot release the next holder",
			run: func(t *testing.T, guard service.InFlightGuard, mr *miniredis.Miniredis) {
				stale, err := guard.Acquire(ctx, deviceID)
				require.NoError(t, err)

				mr.FastForward(testLockTTL + time.Second)
				require.False(t, mr.Exists(lockKey))

				current, err := guard.Acquire(ctx, deviceID)
				require.NoError(t, err)
				holder, err := mr.Get(lockKey)
				require.NoError(t, err)

				stale()

				still, err := mr.Get(lockKey)
				require.NoError(t, err)
				assert.Equal(t, holder, still)

				_, err = guard.Acquire(ctx, deviceID)
				require.ErrorIs(t, err, domainerrors.ErrOperationInFlight)

				current()
				assert.False(t, mr.Exists(lockKey))
			},
		},
		{
			name: "redis failure is not reported as in flight",
			run: func(t *testing.T, guard service.InFlightGuard, mr *miniredis.Miniredis) {
				mr.SetError("ERR server unavailable")

				_, err := guard.Acquire(ctx, deviceID)
				require.Error(t, err)
				assert.NotErrorIs(t, err, domainerrors.ErrOperationInFlight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, mr := newTestRedisGuard(t)
			tt.run(t, guard, mr)
		})
	}
}
