// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/user/handler"
	"github.com/festy23/fantasy_league/internal/user/repository"
	"github.com/festy23/fantasy_league/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg service.Config, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/users/signup", h.Signup)
	r.POST("/users/:id/send-link", h.SendLink)
	r.GET("/users/:id/verify/:code", h.Verify)
	r.POST("/users/:id/generate", h.Generate)
}
