// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/player/handler"
	"github.com/festy23/fantasy_league/internal/player/repository"
	"github.com/festy23/fantasy_league/internal/player/service"
)

// RegisterRoutes registers player read routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/players", h.ListPlayers)
	r.GET("/players/:id", h.GetPlayer)
}
