package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/festy23/fantasy_league/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stdout")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  appConfig.LoggerConfig
	}{
		{"production json", appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"}},
		{"development console", appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stdout"}},
		{"warn to stderr", appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "stderr"}},
		{"invalid level falls back to info", appConfig.LoggerConfig{Level: "loud", Format: "json", Output: "stdout"}},
		{"empty output means stdout", appConfig.LoggerConfig{Level: "error", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			logger.Infow("player acquired", "player_id", 1, "team_id", 2)
		})
	}
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: path,
	})
	require.NoError(t, err)

	logger.Infow("listing created", "player_id", 7, "fee", 1000000)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"listing created"`)
	assert.Contains(t, string(data), `"service":"`+DefaultService+`"`)
}

func TestNewWithConfig_ServiceField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worker.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{
		Level:   "info",
		Format:  "json",
		Output:  path,
		Service: "league-worker",
	})
	require.NoError(t, err)

	logger.Info("dispatcher started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"league-worker"`)
}
