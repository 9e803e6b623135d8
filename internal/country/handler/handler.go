// Package handler provides HTTP handlers for the country list.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/fantasy_league/internal/country"
)

// Handler serves the country list.
type Handler struct{}

// New creates a new country handler.
func New() *Handler {
	return &Handler{}
}

// ListCountries handles GET /countries.
func (h *Handler) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": country.List()})
}
