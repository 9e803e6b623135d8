// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/fantasy_league/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetRolesStatistics handles GET /statistics/roles request.
// @Summary Player aggregates per role
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.RolesStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/roles [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetRolesStatistics(c *gin.Context) {
	resp, err := h.service.GetRolesStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting role statistics", "error", err)
		internalErrorResponse(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMarketStatistics handles GET /statistics/market request.
// @Summary League and transfer market aggregates
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.MarketStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/market [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetMarketStatistics(c *gin.Context) {
	resp, err := h.service.GetMarketStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting market statistics", "error", err)
		internalErrorResponse(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}
