// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/database"
)

// Probe checks one dependency of the service.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// DatabaseProbe pings the database.
func DatabaseProbe(db *gorm.DB) Probe {
	return Probe{
		Name: "database",
		Check: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}
}

// Handler handles health check requests.
type Handler struct {
	probes  []Probe
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(logger *zap.SugaredLogger, probes ...Probe) *Handler {
	return &Handler{
		probes:  probes,
		timeout: 5 * time.Second,
		logger:  logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: make(map[string]string, len(h.probes))}
	code := http.StatusOK

	for _, p := range h.probes {
		if err := p.Check(ctx); err != nil {
			h.logger.Warnw("health check failed", "probe", p.Name, "error", err)
			resp.Checks[p.Name] = "unhealthy"
			resp.Status = "unhealthy"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[p.Name] = "ok"
	}

	c.JSON(code, resp)
}
