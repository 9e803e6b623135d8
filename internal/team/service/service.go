// Package service provides business logic layer for team module.
package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	teamModel "github.com/festy23/fantasy_league/internal/team/model"
	"github.com/festy23/fantasy_league/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// GetTeam returns a team with its current value.
	GetTeam(ctx context.Context, id int64) (*teamModel.TeamResponse, error)

	// Rank returns the most valuable teams, highest first.
	Rank(ctx context.Context) ([]teamModel.TeamResponse, error)
}

// Config controls ranking.
type Config struct {
	RankLimit int
	// RankCacheTTL is how long a computed ranking is served before it is
	// recomputed. Zero disables caching.
	RankCacheTTL time.Duration
	Clock        clockwork.Clock
}

type service struct {
	repo   repository.Repository
	cfg    Config
	logger *zap.SugaredLogger

	// refresh admits one ranking query at a time; waiters give up with ctx.
	refresh chan struct{}

	mu         sync.Mutex
	ranking    []teamModel.TeamResponse
	rankExpiry time.Time
}

// New creates a new team service instance.
func New(repo repository.Repository, cfg Config, logger *zap.SugaredLogger) Service {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.RankLimit <= 0 {
		cfg.RankLimit = 10
	}
	return &service{
		repo:    repo,
		cfg:     cfg,
		logger:  logger,
		refresh: make(chan struct{}, 1),
	}
}

// GetTeam returns a team with its current value.
func (s *service) GetTeam(ctx context.Context, id int64) (*teamModel.TeamResponse, error) {
	if id <= 0 {
		return nil, teamModel.ErrInvalidTeamID
	}
	return s.repo.GetWithValue(ctx, id)
}

// Rank returns the most valuable teams, serving a cached copy while it is fresh.
// Concurrent callers share one refresh; a caller waiting for it returns
// ctx.Err() when its context ends first.
func (s *service) Rank(ctx context.Context) ([]teamModel.TeamResponse, error) {
	if ranking, ok := s.cachedRanking(); ok {
		return ranking, nil
	}

	select {
	case s.refresh <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-s.refresh }()

	if ranking, ok := s.cachedRanking(); ok {
		return ranking, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranking, err := s.repo.Rank(ctx, s.cfg.RankLimit)
	if err != nil {
		return nil, err
	}

	if s.cfg.RankCacheTTL > 0 {
		s.mu.Lock()
		s.ranking = ranking
		s.rankExpiry = s.cfg.Clock.Now().Add(s.cfg.RankCacheTTL)
		s.mu.Unlock()
		s.logger.Debugw("team ranking refreshed", "teams", len(ranking), "ttl", s.cfg.RankCacheTTL)
	}
	return slices.Clone(ranking), nil
}

func (s *service) cachedRanking() ([]teamModel.TeamResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ranking == nil || !s.cfg.Clock.Now().Before(s.rankExpiry) {
		return nil, false
	}
	return slices.Clone(s.ranking), true
}
