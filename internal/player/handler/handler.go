// Package handler provides HTTP handlers for player read endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	"github.com/festy23/fantasy_league/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetPlayer handles GET /players/:id request.
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} playerModel.PlayerResponse
// @Failure 400 {object} ErrorResponse "Invalid player id"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /players/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", "player id must be a positive integer", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetPlayer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, playerModel.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error getting player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPlayers handles GET /players request.
// @Summary List players
// @Tags Players
// @Produce json
// @Param team_id query int false "Only players of this team"
// @Success 200 {array} playerModel.PlayerResponse
// @Failure 400 {object} ErrorResponse "Invalid team_id"
// @Router /players [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListPlayers(c *gin.Context) {
	var teamID *int64
	if raw, ok := c.GetQuery("team_id"); ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "team_id must be an integer", http.StatusBadRequest)
			return
		}
		teamID = &id
	}

	players, err := h.service.ListPlayers(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Errorw("error listing players", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, players)
}
