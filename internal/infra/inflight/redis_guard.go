package inflight

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/service"
	"jelpi/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "jelpi:inflight:"
	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the key only while it still holds the caller's token,
// so a holder whose lock expired cannot release the next holder's lock.
//
//nolint:gochecknoglobals
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisGuard admits one holder per key across every process sharing the redis instance.
type redisGuard struct {
	rdb    goredis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisGuard returns a guard backed by SET NX with a TTL.
func NewRedisGuard(rdb goredis.UniversalClient, ttl time.Duration, logger *slog.Logger) service.InFlightGuard {
	return &redisGuard{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (g *redisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := keyPrefix + key

	ok, err := g.rdb.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire in-flight lock %s", key)
	}
	if !ok {
		return nil, domainerrors.ErrOperationInFlight.WithDetails("key " + key + " is held")
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			// The caller's context may already be cancelled when the operation ends.
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, g.rdb, []string{redisKey}, token).Err(); err != nil {
				g.logger.WarnContext(ctx, "Failed to release in-flight lock, it will expire",
					slog.String("key", key),
					slog.Duration("ttl", g.ttl),
					slog.Any("error", err),
				)
			}
		})
	}, nil
}
