package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/config"
	"github.com/festy23/fantasy_league/internal/database/pool"
	"github.com/festy23/fantasy_league/pkg/retry"
)

func quickRetry() retry.Config {
	return retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := open(sqlite.Open(":memory:"), config.Config{DBName: ":memory:"}, quickRetry(),
		pool.Config{MaxOpenConns: 1, MaxIdleConns: 1}, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen(t *testing.T) {
	t.Run("applies pool settings", func(t *testing.T) {
		db := openTestDB(t)

		stats, err := GetStats(db)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.MaxOpenConnections)
	})

	t.Run("translates driver errors", func(t *testing.T) {
		db := openTestDB(t)
		assert.True(t, db.Config.TranslateError)
	})

	t.Run("rejects invalid pool config", func(t *testing.T) {
		_, err := open(sqlite.Open(":memory:"), config.Config{}, quickRetry(),
			pool.Config{MaxOpenConns: 0}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to setup connection pool")
	})

	t.Run("invalid retry config is reported", func(t *testing.T) {
		_, err := open(sqlite.Open(":memory:"), config.Config{Password: "secret"}, retry.Config{},
			pool.DefaultPoolConfig(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to database")
	})
}

func TestNewWithConfig_RejectsInvalidConfig(t *testing.T) {
	_, err := NewWithConfig(config.Config{Host: "localhost", DBName: "fantasy_league", Port: "0", SSLMode: "disable"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database config")
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy connection", func(t *testing.T) {
		assert.NoError(t, HealthCheck(context.Background(), openTestDB(t)))
	})

	t.Run("nil database", func(t *testing.T) {
		err := HealthCheck(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("closed connection", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, Close(db))

		assert.Error(t, HealthCheck(context.Background(), db))
	})
}

func TestClose(t *testing.T) {
	t.Run("close valid connection", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, Close(db))

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Error(t, sqlDB.Ping())
	})

	t.Run("close nil database", func(t *testing.T) {
		assert.NoError(t, Close(nil))
	})
}

func TestGetStats(t *testing.T) {
	stats, err := GetStats(nil)
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "database connection is nil")
}
