// Package handler provides HTTP handlers for the transfer market.
package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
	transferModel "github.com/festy23/fantasy_league/internal/transfer/model"
	"github.com/festy23/fantasy_league/internal/transfer/service"
)

// Handler handles HTTP requests for transfer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new transfer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Sell handles POST /players/:id/sell request.
// @Summary List a player for sale
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body transferModel.SellRequest false "Fee, defaults to market value"
// @Success 201 {object} transferModel.SellResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 503 {object} ErrorResponse "Player is locked by another operation"
// @Router /players/{id}/sell [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Sell(c *gin.Context) {
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var req transferModel.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListForSale(c.Request.Context(), playerID, req.Fee)
	if err != nil {
		h.handleError(c, "error listing player", playerID, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Buy handles POST /players/:id/buy request.
// @Summary Buy a listed player
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body transferModel.TeamRequest true "Buying team"
// @Success 201 {object} transferModel.AcquireResponse
// @Failure 400 {object} ErrorResponse "Invalid request (INVALID_REQUEST, INSUFFICIENT_FUNDS)"
// @Failure 404 {object} ErrorResponse "Player not found or not for sale"
// @Failure 503 {object} ErrorResponse "Player is locked by another operation"
// @Router /players/{id}/buy [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Buy(c *gin.Context) {
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var req transferModel.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Acquire(c.Request.Context(), playerID, req.TeamID)
	if err != nil {
		h.handleError(c, "error acquiring player", playerID, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Move handles POST /players/:id/move request.
// @Summary Move a player to another team (admin)
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body transferModel.TeamRequest true "Destination team"
// @Success 201 {object} transferModel.MoveResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /players/{id}/move [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Move(c *gin.Context) {
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var req transferModel.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Move(c.Request.Context(), playerID, req.TeamID)
	if err != nil {
		h.handleError(c, "error moving player", playerID, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListTransfers handles GET /transfers request.
// @Summary Open listings, newest first
// @Tags Transfers
// @Produce json
// @Success 200 {array} transferModel.Transfer
// @Router /transfers [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTransfers(c *gin.Context) {
	transfers, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing transfers", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, transfers)
}

func playerIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", "player id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, msg string, playerID int64, err error) {
	switch {
	case errors.Is(err, transferModel.ErrInvalidFee):
		errorResponse(c, "INVALID_REQUEST", "fee must be non-negative", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInvalidTeamID), errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "INVALID_REQUEST", "team_id does not reference an existing team", http.StatusBadRequest)
	case errors.Is(err, playerModel.ErrInvalidPlayerID):
		errorResponse(c, "INVALID_REQUEST", "player id must be a positive integer", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInsufficientFunds):
		errorResponse(c, "INSUFFICIENT_FUNDS", "team balance does not cover the fee", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrBalanceOverflow):
		errorResponse(c, "BALANCE_OVERFLOW", "fee would overflow the seller's bank balance", http.StatusBadRequest)
	case errors.Is(err, playerModel.ErrPlayerNotFound):
		notFoundResponse(c, "player not found")
	case errors.Is(err, transferModel.ErrNoActiveListing):
		notFoundResponse(c, "player is not for sale")
	case service.IsRetryable(err):
		c.Header("Retry-After", "1")
		errorResponse(c, "LOCK_TIMEOUT", "player is busy, retry later", http.StatusServiceUnavailable)
	default:
		h.logger.Errorw(msg, "player_id", playerID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
