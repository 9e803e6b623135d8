// Package router provides transfer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/transfer/handler"
	"github.com/festy23/fantasy_league/internal/transfer/repository"
	"github.com/festy23/fantasy_league/internal/transfer/service"
)

// RegisterRoutes registers the transfer market routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg service.Config, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/players/:id/sell", h.Sell)
	r.POST("/players/:id/buy", h.Buy)
	r.POST("/players/:id/move", h.Move)
	r.GET("/transfers", h.ListTransfers)
}
