// Package repository provides data access layer for player module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	playerModel "github.com/festy23/fantasy_league/internal/player/model"
)

const batchSize = 100

// Repository defines the interface for player data access operations.
type Repository interface {
	// CreateBatch inserts players in one statement per batch.
	CreateBatch(ctx context.Context, players []playerModel.Player) error

	// GetByID finds a player by id.
	GetByID(ctx context.Context, id int64) (*playerModel.Player, error)

	// LockByID finds a player by id and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id int64) (*playerModel.Player, error)

	// GetDetails returns a player joined with the owning team's name.
	GetDetails(ctx context.Context, id int64) (*playerModel.PlayerResponse, error)

	// List returns players ordered by first name, optionally restricted to one team.
	List(ctx context.Context, teamID *int64) ([]playerModel.PlayerResponse, error)

	// Reassign moves the player to teamID and stores the new market value.
	Reassign(ctx context.Context, id, teamID, marketValue int64) error

	// SetTeam moves the player to teamID without touching the market value.
	SetTeam(ctx context.Context, id, teamID int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new player repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateBatch inserts players in one statement per batch.
func (r *repository) CreateBatch(ctx context.Context, players []playerModel.Player) error {
	if len(players) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&players, batchSize).Error
}

// GetByID finds a player by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*playerModel.Player, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// LockByID finds a player by id with SELECT ... FOR UPDATE.
func (r *repository) LockByID(ctx context.Context, id int64) (*playerModel.Player, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *repository) first(db *gorm.DB, id int64) (*playerModel.Player, error) {
	var player playerModel.Player
	if err := db.Where("id = ?", id).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *repository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("players").
		Select("players.id, players.team_id, teams.name AS team_name, players.role, " +
			"players.first_name, players.last_name, players.country, players.age, players.market_value").
		Joins("LEFT JOIN teams ON teams.id = players.team_id")
}

// GetDetails returns a player joined with the owning team's name.
func (r *repository) GetDetails(ctx context.Context, id int64) (*playerModel.PlayerResponse, error) {
	var rows []playerModel.PlayerResponse
	if err := r.detailsQuery(ctx).Where("players.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, playerModel.ErrPlayerNotFound
	}
	return &rows[0], nil
}

// List returns players ordered by first name, optionally restricted to one team.
func (r *repository) List(ctx context.Context, teamID *int64) ([]playerModel.PlayerResponse, error) {
	query := r.detailsQuery(ctx)
	if teamID != nil {
		query = query.Where("players.team_id = ?", *teamID)
	}

	var rows []playerModel.PlayerResponse
	if err := query.Order("players.first_name ASC").Order("players.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		return []playerModel.PlayerResponse{}, nil
	}
	return rows, nil
}

// Reassign moves the player to teamID and stores the new market value.
func (r *repository) Reassign(ctx context.Context, id, teamID, marketValue int64) error {
	return r.update(ctx, id, map[string]any{
		"team_id":      teamID,
		"market_value": marketValue,
	})
}

// SetTeam moves the player to teamID without touching the market value.
func (r *repository) SetTeam(ctx context.Context, id, teamID int64) error {
	return r.update(ctx, id, map[string]any{"team_id": teamID})
}

func (r *repository) update(ctx context.Context, id int64, columns map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&playerModel.Player{}).
		Where("id = ?", id).
		UpdateColumns(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}
