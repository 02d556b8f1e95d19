package db

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/dbmanager"
)

// newTestStore returns an isolated in-memory store with the schema applied.
// It is closed when the test ends.
func newTestStore(t *testing.T) (context.Context, *Store) {
	t.Helper()
	ctx := log.Logger.WithContext(context.Background())
	store, err := Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dbmanager.MemoryDSN})
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	require.Nil(t, store.EnsureSchema(ctx))
	return ctx, store
}

// stepClock returns a clock that advances by one second on every call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func strPtr(s string) *string {
	return &s
}
