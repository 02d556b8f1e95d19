package dbmanager

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// NewSqliteDb opens an sqlite database. sqlite allows a single writer, so the
// pool is limited to one connection and callers queue on it. This also keeps
// an in-memory database alive and shared for the lifetime of the pool.
func NewSqliteDb(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := open(ctx, sqliteDriverName, cfg.DSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	log.Ctx(ctx).Debug().Str("dsn", cfg.DSN).Msg("opened sqlite database")
	return db, nil
}
