// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/config"
	"github.com/festy23/fantasy_league/internal/team/handler"
	"github.com/festy23/fantasy_league/internal/team/repository"
	"github.com/festy23/fantasy_league/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg config.MarketConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, service.Config{
		RankLimit:    cfg.RankLimit,
		RankCacheTTL: cfg.RankCacheTTL,
		Clock:        clockwork.NewRealClock(),
	}, logger)
	h := handler.New(svc, logger)

	r.GET("/teams/rank", h.Rank)
	r.GET("/teams/:id", h.GetTeam)
}
