// Package service provides business logic layer for player module.
package service

import (
	"context"

	"go.uber.org/zap"

	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	"github.com/festy23/fantasy_league/internal/player/repository"
)

// Service defines the interface for player read operations. Ownership
// changes go through the transfer engine.
type Service interface {
	// GetPlayer returns a single player.
	GetPlayer(ctx context.Context, id int64) (*playerModel.PlayerResponse, error)

	// ListPlayers returns players, all of them or those of one team.
	ListPlayers(ctx context.Context, teamID *int64) ([]playerModel.PlayerResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetPlayer returns a single player.
func (s *service) GetPlayer(ctx context.Context, id int64) (*playerModel.PlayerResponse, error) {
	if id <= 0 {
		return nil, playerModel.ErrInvalidPlayerID
	}
	return s.repo.GetDetails(ctx, id)
}

// ListPlayers returns players, all of them or those of one team.
func (s *service) ListPlayers(ctx context.Context, teamID *int64) ([]playerModel.PlayerResponse, error) {
	return s.repo.List(ctx, teamID)
}
