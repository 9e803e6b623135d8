package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE", "DB_TIMEZONE"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfigFromEnv()
		assert.Equal(t, Config{
			Host:     "localhost",
			User:     "postgres",
			Password: "postgres",
			DBName:   "fantasy_league",
			Port:     "5432",
			SSLMode:  "disable",
			TimeZone: "UTC",
		}, cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "league")
		t.Setenv("DB_PASSWORD", "s3cret")
		t.Setenv("DB_NAME", "league_test")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("DB_TIMEZONE", "Europe/Berlin")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "league", cfg.User)
		assert.Equal(t, "s3cret", cfg.Password)
		assert.Equal(t, "league_test", cfg.DBName)
		assert.Equal(t, "6543", cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, "Europe/Berlin", cfg.TimeZone)
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "postgres",
		Password: "postgres",
		DBName:   "fantasy_league",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=fantasy_league port=5432 sslmode=disable TimeZone=UTC",
		BuildDSN(cfg))
}

func TestBuildDSN_QuotesSpecialValues(t *testing.T) {
	cfg := Config{
		Host:     "db",
		User:     "league",
		Password: `it's a \secret`,
		DBName:   "fantasy_league",
		Port:     "5432",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		`host=db user=league password='it\'s a \\secret' dbname=fantasy_league port=5432 sslmode=disable TimeZone=''`,
		BuildDSN(cfg))
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Host: "localhost", DBName: "fantasy_league", Port: "5432", SSLMode: "disable"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing host", func(c *Config) { c.Host = "" }, "DB_HOST"},
		{"missing database", func(c *Config) { c.DBName = "" }, "DB_NAME"},
		{"non-numeric port", func(c *Config) { c.Port = "pg" }, "DB_PORT"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "DB_PORT"},
		{"unknown sslmode", func(c *Config) { c.SSLMode = "on" }, "DB_SSLMODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Host: "localhost", User: "postgres", Password: "hunter2", DBName: "fantasy_league"}

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, cfg))
	})

	t.Run("password is masked", func(t *testing.T) {
		err := SanitizeError(errors.New("dial failed: "+BuildDSN(cfg)), cfg)
		assert.NotContains(t, err.Error(), "hunter2")
		assert.Contains(t, err.Error(), "password=***")
		assert.Contains(t, err.Error(), "failed to connect to database")
	})

	t.Run("empty password leaves message intact", func(t *testing.T) {
		err := SanitizeError(errors.New("connection refused"), Config{})
		assert.Equal(t, "failed to connect to database: connection refused", err.Error())
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "250ms")
	t.Setenv("DB_RETRY_MAX_DELAY", "5s")
	t.Setenv("DB_RETRY_MULTIPLIER", "1.5")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 5*time.Second, cfg.MaxDelay)
	assert.Equal(t, 1.5, cfg.Multiplier)
	assert.NotEmpty(t, cfg.RetryableErrors)
}
