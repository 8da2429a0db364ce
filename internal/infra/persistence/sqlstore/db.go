// Package sqlstore is the GORM implementation of the hub's repositories,
// backed by PostgreSQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"nearby/config"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/lifecycle"
	"nearby/internal/errors"
	"nearby/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store, migrates the schema and registers the
// lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	logger := params.Logger.With(slog.String("component", "sqlstore"))

	db, err := Open(params.Config, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}
			if err := Migrate(ctx, db); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the driver selected in cfg.Database.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case constants.DatabaseDriverPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("postgres driver selected without postgres config")
		}
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	case constants.DatabaseDriverSQLite, "":
		dsn := cfg.Database.SQLiteDSN
		if dsn == "" {
			dsn = "file:nearby.db"
		}
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
		}
		// SQLite serialises writers; one connection also keeps ":memory:" databases shared.
		sqlDB.SetMaxOpenConns(1)
	default:
		return nil, errors.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	return db.Session(&gorm.Session{
		// Explicit transactions go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// Migrate creates or updates the hub tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			if waitDelta > 0 {
				waitDurationDelta := cur.WaitDuration - prev.WaitDuration
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Database pool wait",
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				)
			}

			prev = cur
		}
	}
}
