package inflight

import (
	"context"
	"log/slog"

	"jelpi/config"
	"jelpi/internal/domain/constants"
	"jelpi/internal/domain/lifecycle"
	"jelpi/internal/domain/service"
	"jelpi/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// GuardParams holds dependencies for the in-flight guard, injected by Fx
type GuardParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewInFlightGuard creates the guard selected by configuration. Local is the default.
func NewInFlightGuard(params GuardParams) (service.InFlightGuard, error) {
	cfg := params.Config.InFlight
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.InFlightProviderLocal {
		params.Logger.Info("Using in-process in-flight guard")

		return NewLocalGuard(), nil
	}

	if cfg.Provider != constants.InFlightProviderRedis {
		return nil, errors.Errorf("unknown inflight provider: %s", cfg.Provider)
	}

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis address is required for redis inflight provider")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        redisCfg.Addr,
		Password:    redisCfg.Password,
		DB:          redisCfg.DB,
		DialTimeout: redisCfg.DialTimeout,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	params.Logger.Info("Using redis in-flight guard",
		slog.String("addr", redisCfg.Addr),
		slog.Duration("ttl", cfg.TTL),
	)

	return NewRedisGuard(rdb, cfg.TTL, params.Logger), nil
}
