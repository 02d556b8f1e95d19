// Package db is the persistence layer of the resource service. Store owns the
// connection pool and the schema; ResourceRepository is the only component
// that issues queries against it.
package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/apperrors"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/dberror"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/dbmanager"
)

var schemas = map[string][]string{
	config.DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS resources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resources_created_at ON resources (created_at)`,
	},
	config.DriverPostgreSQL: {
		`CREATE TABLE IF NOT EXISTS resources (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resources_created_at ON resources (created_at)`,
	},
}

// Store is the handle to the resources table. It is created once at startup
// and passed to the components that need it.
type Store struct {
	conn    *sqlx.DB
	dialect string
}

// NewStore wraps an open pool. dialect is one of the config.Driver* values.
func NewStore(conn *sqlx.DB, dialect string) *Store {
	return &Store{conn: conn, dialect: dialect}
}

// Open opens the configured database and returns a Store for it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	conn, err := dbmanager.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(conn, cfg.Driver), nil
}

// EnsureSchema creates the resources table if it does not exist. It is safe
// to call repeatedly.
func (s *Store) EnsureSchema(ctx context.Context) apperrors.Error {
	stmts, ok := schemas[s.dialect]
	if !ok {
		return dberror.ErrDatabase.Msg("no schema for dialect " + s.dialect)
	}
	for _, stmt := range stmts {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to create schema")
			return dberror.FromDriver(err)
		}
	}
	log.Ctx(ctx).Info().Str("dialect", s.dialect).Msg("database schema initialized")
	return nil
}

// Close releases the pool. For in-memory sqlite this discards all data.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Dialect() string {
	return s.dialect
}
