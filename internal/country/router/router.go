// Package router provides country module routes registration.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/festy23/fantasy_league/internal/country/handler"
)

// RegisterRoutes registers country module routes.
func RegisterRoutes(r gin.IRouter) {
	r.GET("/countries", handler.New().ListCountries)
}
