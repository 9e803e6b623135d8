// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/festy23/fantasy_league/internal/team/model"
	"github.com/festy23/fantasy_league/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team with its value
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid team id"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", "team id must be a positive integer", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Rank handles GET /teams/rank request.
// @Summary Most valuable teams
// @Tags Teams
// @Produce json
// @Success 200 {array} teamModel.TeamResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/rank [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Rank(c *gin.Context) {
	teams, err := h.service.Rank(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error ranking teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, teams)
}
