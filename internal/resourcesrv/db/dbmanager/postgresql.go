package dbmanager

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
)

// NewPostgresqlDb opens a PostgreSQL pool through the pgx stdlib driver.
func NewPostgresqlDb(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := open(ctx, postgresDriverName, cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	log.Ctx(ctx).Debug().Msg("opened postgresql database")
	return db, nil
}
