// Package dbmanager opens the SQL connection pool backing the resource store.
package dbmanager

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
)

// sql driver names registered by the imported drivers
const (
	sqliteDriverName   = "sqlite3"
	postgresDriverName = "pgx"
)

// Open returns a pinged connection pool for the configured driver.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewSqliteDb(ctx, cfg)
	case config.DriverPostgreSQL:
		return NewPostgresqlDb(ctx, cfg)
	}
	return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
}

func open(ctx context.Context, driverName, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("driver", driverName).Msg("failed to open db")
		return nil, errors.Wrap(err, "failed to open db")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("driver", driverName).Msg("failed to ping db")
		db.Close()
		return nil, errors.Wrap(err, "failed to ping db")
	}
	return db, nil
}
