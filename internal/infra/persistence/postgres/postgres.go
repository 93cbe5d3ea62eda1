package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"jelpi/config"
	"jelpi/internal/domain/lifecycle"
	"jelpi/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the device store connection. Reads go through the replicas
// configured in cfg.Postgres, writes and transactions through the master.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open device store")
	}

	dbCfg := params.Config.Database
	if dbCfg == nil {
		dbCfg = &config.DatabaseConfig{}
	}

	// Multi-step writes are wrapped explicitly by the transaction manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug, dbCfg.SlowQuery),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get device store sql.DB")
	}

	monitor := &poolMonitor{
		logger:    params.Logger,
		db:        sqlDB,
		period:    dbCfg.PoolMonitorPeriod,
		warnAfter: dbCfg.PoolWaitWarn,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping device store")
			}

			monitor.start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			monitor.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor samples sql.DB stats and reports connection wait growth.
type poolMonitor struct {
	logger    *slog.Logger
	db        *sql.DB
	period    time.Duration
	warnAfter time.Duration
	cancel    context.CancelFunc
}

func (m *poolMonitor) start() {
	if m.period <= 0 || m.logger == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go m.run(ctx)
}

func (m *poolMonitor) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.period)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Device store pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)
}
