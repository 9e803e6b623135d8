package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func check(t *testing.T, handler *Handler) (int, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.Check)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandler_Check(t *testing.T) {
	t.Run("database is healthy", func(t *testing.T) {
		db := setupTestDB(t)

		code, resp := check(t, New(zap.NewNop().Sugar(), DatabaseProbe(db)))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, map[string]string{"database": "ok"}, resp.Checks)
	})

	t.Run("database is unavailable", func(t *testing.T) {
		db := setupTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		code, resp := check(t, New(zap.NewNop().Sugar(), DatabaseProbe(db)))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "unhealthy", resp.Checks["database"])
	})

	t.Run("one failing probe marks the service unhealthy", func(t *testing.T) {
		db := setupTestDB(t)
		failing := Probe{Name: "notify", Check: func(context.Context) error { return errors.New("stopped") }}

		code, resp := check(t, New(zap.NewNop().Sugar(), DatabaseProbe(db), failing))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, map[string]string{"database": "ok", "notify": "unhealthy"}, resp.Checks)
	})

	t.Run("no probes", func(t *testing.T) {
		code, resp := check(t, New(zap.NewNop().Sugar()))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", resp.Status)
	})
}
