package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"rolodex/config"
	"rolodex/internal/domain/lifecycle"
	"rolodex/internal/errors"
	"rolodex/internal/infra/persistence/model"

	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params collects what the connection needs from the fx graph.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client, registers read replicas when configured,
// and migrates the schema on startup.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config.Postgres
	if cfg == nil {
		return nil, errors.New("postgres configuration must be provided")
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{
		// Multi-step writes go through TransactionManager.Execute; single
		// statements do not need GORM's implicit wrapping transaction.
		SkipDefaultTransaction: true,
		// Surface driver constraint failures as gorm.Err* sentinels so the
		// repositories can map them to domain errors.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if dsns := cfg.ReplicaDSNs(); len(dsns) > 0 {
		dialectors := make([]gorm.Dialector, 0, len(dsns))
		for _, dsn := range dsns {
			dialectors = append(dialectors, pgdriver.Open(dsn))
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: dialectors,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			// Create missing tables, columns and indexes on boot.
			if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}, &model.ContactModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			go watchPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPool samples pool statistics on a fixed interval and logs intervals in
// which queries had to wait for a connection. The line escalates to warn once
// the added wait crosses dbPoolWarnDurationThreshold.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur

		if waits == 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= dbPoolWarnDurationThreshold {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "connection pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("openConns", cur.OpenConnections),
			slog.Int("inUseConns", cur.InUse),
			slog.Int("idleConns", cur.Idle),
			slog.Int("maxOpenConns", cur.MaxOpenConnections),
		)
	}
}
