package league

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	playerRepository "github.com/festy23/fantasy_league/internal/player/repository"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
	teamRepository "github.com/festy23/fantasy_league/internal/team/repository"
)

// Builder replaces an owner's team with a freshly generated one.
type Builder struct {
	gen    *Generator
	logger *zap.SugaredLogger
}

// NewBuilder creates a builder backed by gen.
func NewBuilder(gen *Generator, logger *zap.SugaredLogger) *Builder {
	return &Builder{gen: gen, logger: logger}
}

// GenerateTeam deletes the owner's current team, if any, and creates a new
// one with a full squad. tx must be an open transaction; the old team's
// players are left without a team.
func (b *Builder) GenerateTeam(ctx context.Context, tx *gorm.DB, ownerID int64, ownerName string) (*teamModel.Team, []playerModel.Player, error) {
	teams := teamRepository.New(tx, b.logger)
	players := playerRepository.New(tx, b.logger)

	if err := teams.DeleteByOwner(ctx, ownerID); err != nil {
		return nil, nil, fmt.Errorf("delete previous team: %w", err)
	}

	team := b.gen.Team(ownerID, ownerName)
	if err := teams.Create(ctx, &team); err != nil {
		return nil, nil, fmt.Errorf("create team: %w", err)
	}

	squad := b.gen.Players(team.ID)
	if err := players.CreateBatch(ctx, squad); err != nil {
		return nil, nil, fmt.Errorf("create players: %w", err)
	}

	b.logger.Infow("team generated",
		"owner_id", ownerID,
		"team_id", team.ID,
		"players", len(squad))

	return &team, squad, nil
}
