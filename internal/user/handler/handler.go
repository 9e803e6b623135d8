// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/fantasy_league/internal/notify"
	"github.com/festy23/fantasy_league/internal/user/model"
	"github.com/festy23/fantasy_league/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", "user id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// Signup handles POST /users/signup request.
// @Summary Create an account with a generated team
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Request"
// @Success 201 {object} model.SignupResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /users/signup [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// SendLink handles POST /users/:id/send-link request.
// @Summary Send the verification e-mail again
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 202
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id}/send-link [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SendLink(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.SendVerificationLink(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"user_id": id, "status": "queued"})
}

// Verify handles GET /users/:id/verify/:code request.
// @Summary Verify a user's e-mail address
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Param code path string true "Verification code"
// @Success 200 {object} model.VerifyResponse
// @Failure 400 {object} ErrorResponse "Invalid code"
// @Router /users/{id}/verify/{code} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Verify(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	resp, err := h.service.Verify(c.Request.Context(), id, c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Generate handles POST /users/:id/generate request.
// @Summary Replace a user's team with a generated one
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 201 {object} model.GenerateResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id}/generate [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Generate(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateTeam(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidUserID),
		errors.Is(err, model.ErrInvalidEmail),
		errors.Is(err, model.ErrPasswordTooShort),
		errors.Is(err, model.ErrInvalidVerificationCode),
		errors.Is(err, model.ErrAlreadyVerified):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrEmailTaken):
		errorResponse(c, "EMAIL_EXISTS", err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrUserNotFound):
		notFoundResponse(c, "user not found")
	case errors.Is(err, notify.ErrQueueFull):
		c.Header("Retry-After", "1")
		errorResponse(c, "QUEUE_FULL", "notification queue is full, try again later", http.StatusServiceUnavailable)
	default:
		h.logger.Errorw("user request failed", "path", c.FullPath(), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
