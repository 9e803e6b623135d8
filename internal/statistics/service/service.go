// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/fantasy_league/internal/statistics/model"
	"github.com/festy23/fantasy_league/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetRolesStatistics returns player aggregates per role.
	GetRolesStatistics(ctx context.Context) (*model.RolesStatisticsResponse, error)

	// GetMarketStatistics returns league-wide and transfer market aggregates.
	GetMarketStatistics(ctx context.Context) (*model.MarketStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetRolesStatistics returns player aggregates per role.
func (s *service) GetRolesStatistics(ctx context.Context) (*model.RolesStatisticsResponse, error) {
	roles, err := s.repo.GetRolesStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetRolesStatistics failed", "error", err)
		return nil, err
	}

	if roles == nil {
		roles = []model.RoleStatistics{}
	}

	total := 0
	for _, r := range roles {
		total += r.Players
	}

	return &model.RolesStatisticsResponse{
		Roles: roles,
		Total: total,
	}, nil
}

// GetMarketStatistics returns league-wide and transfer market aggregates.
func (s *service) GetMarketStatistics(ctx context.Context) (*model.MarketStatisticsResponse, error) {
	stats, err := s.repo.GetMarketStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetMarketStatistics failed", "error", err)
		return nil, err
	}

	s.logger.Debugw("GetMarketStatistics completed",
		"teams", stats.Teams,
		"active_listings", stats.ActiveListings)
	return &model.MarketStatisticsResponse{
		Statistics: *stats,
	}, nil
}
