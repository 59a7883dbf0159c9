package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/config"
)

func unreachableConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	cfg, err := config.LoadConfig(t.TempDir() + "/missing.yaml")
	require.NoError(t, err)
	return cfg
}

func TestNewPostgresDB_LazyConnect(t *testing.T) {
	database, err := NewPostgresDB(unreachableConfig(t))
	require.NoError(t, err)
	defer database.Close()

	assert.Error(t, database.Ping(context.Background(), 2*time.Second))
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	database, err := NewPostgresDB(unreachableConfig(t))
	require.NoError(t, err)
	defer database.Close()

	called := false
	err = database.WithTransaction(context.Background(), func(context.Context, pgx.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestNewPostgresDB_RejectsBadLifetime(t *testing.T) {
	cfg := unreachableConfig(t)
	cfg.Database.ConnMaxLifetime = "forever"

	_, err := NewPostgresDB(cfg)
	assert.Error(t, err)
}
