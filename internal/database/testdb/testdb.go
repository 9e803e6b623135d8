// Package testdb opens an in-memory SQLite database carrying the same
// tables and constraints as the PostgreSQL migrations, for use in tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// schema mirrors migrations/000001_init_schema.up.sql in SQLite dialect.
var schema = []string{
	`CREATE TABLE users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		email         TEXT     NOT NULL UNIQUE,
		username      TEXT     NOT NULL UNIQUE,
		password_hash TEXT     NOT NULL,
		first_name    TEXT     NOT NULL DEFAULT '',
		last_name     TEXT     NOT NULL DEFAULT '',
		is_staff      BOOLEAN  NOT NULL DEFAULT FALSE,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE email_verifications (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
		code        TEXT    NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE teams (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id     INTEGER  NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
		name         TEXT     NOT NULL,
		country      TEXT     NOT NULL,
		bank_balance INTEGER  NOT NULL DEFAULT 5000000,
		created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT teams_bank_balance_non_negative CHECK (bank_balance >= 0)
	)`,
	`CREATE TABLE players (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		team_id      INTEGER REFERENCES teams (id) ON DELETE SET NULL,
		role         TEXT     NOT NULL,
		first_name   TEXT     NOT NULL,
		last_name    TEXT     NOT NULL,
		country      TEXT     NOT NULL,
		age          INTEGER  NOT NULL,
		market_value INTEGER  NOT NULL DEFAULT 1000000,
		created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT players_role_valid CHECK (role IN ('goal-keeper', 'defender', 'mid-fielder', 'attacker')),
		CONSTRAINT players_market_value_non_negative CHECK (market_value >= 0),
		CONSTRAINT players_age_positive CHECK (age > 0)
	)`,
	`CREATE TABLE transfers (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id  INTEGER  NOT NULL REFERENCES players (id) ON DELETE CASCADE,
		fee        INTEGER  NOT NULL,
		is_active  BOOLEAN  NOT NULL DEFAULT TRUE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT transfers_fee_non_negative CHECK (fee >= 0)
	)`,
	`CREATE UNIQUE INDEX uq_transfers_active_player ON transfers (player_id) WHERE is_active`,
}

// New returns a fresh database with the full schema applied. The pool is
// limited to one connection because every in-memory connection is its own
// database; concurrent callers therefore queue on the pool.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}
