// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"math"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/fantasy_league/internal/database/dberr"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id int64) (*teamModel.Team, error)

	// GetByOwner finds the team owned by the given user.
	GetByOwner(ctx context.Context, ownerID int64) (*teamModel.Team, error)

	// DeleteByOwner removes the owner's team if there is one.
	DeleteByOwner(ctx context.Context, ownerID int64) error

	// LockByIDs takes row locks on the given teams in ascending id order.
	LockByIDs(ctx context.Context, ids ...int64) ([]teamModel.Team, error)

	// Credit adds amount to the team's bank balance, failing with
	// ErrBalanceOverflow when the result would not fit.
	Credit(ctx context.Context, id, amount int64) error

	// Debit subtracts amount from the team's bank balance, refusing to go below zero.
	Debit(ctx context.Context, id, amount int64) error

	// GetWithValue returns the team together with its players' summed market value.
	GetWithValue(ctx context.Context, id int64) (*teamModel.TeamResponse, error)

	// Rank returns up to limit teams ordered by value, highest first.
	Rank(ctx context.Context, limit int) ([]teamModel.TeamResponse, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}
	return nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetByOwner finds the team owned by the given user.
func (r *repository) GetByOwner(ctx context.Context, ownerID int64) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// DeleteByOwner removes the owner's team. Players of the deleted team
// become unassigned.
func (r *repository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	db := r.db.WithContext(ctx)

	var ids []int64
	if err := db.Model(&teamModel.Team{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	// Matches ON DELETE SET NULL for drivers that do not enforce foreign keys.
	if err := db.Table("players").Where("team_id IN ?", ids).Update("team_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", ids).Delete(&teamModel.Team{}).Error
}

// LockByIDs takes row locks on the given teams one at a time in ascending
// id order, so two transactions touching the same pair of teams always
// contend on the lower id first.
func (r *repository) LockByIDs(ctx context.Context, ids ...int64) ([]teamModel.Team, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	teams := make([]teamModel.Team, 0, len(sorted))
	for _, id := range sorted {
		var team teamModel.Team
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&team).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, teamModel.ErrTeamNotFound
			}
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// Credit adds amount to the team's bank balance. A credit that would take
// the balance past math.MaxInt64 is rejected with ErrBalanceOverflow.
func (r *repository) Credit(ctx context.Context, id, amount int64) error {
	if amount < 0 {
		return teamModel.ErrInvalidAmount
	}

	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ? AND bank_balance <= ?", id, int64(math.MaxInt64)-amount).
		UpdateColumn("bank_balance", gorm.Expr("bank_balance + ?", amount))
	if result.Error != nil {
		if dberr.IsOutOfRange(result.Error) {
			return teamModel.ErrBalanceOverflow
		}
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if r.logger != nil {
		r.logger.Infow("credit rejected", "team_id", id, "amount", amount)
	}
	return teamModel.ErrBalanceOverflow
}

// Debit subtracts amount from the team's bank balance. The balance check is
// part of the UPDATE itself; the CHECK constraint on the column is the
// second line.
func (r *repository) Debit(ctx context.Context, id, amount int64) error {
	if amount < 0 {
		return teamModel.ErrInvalidAmount
	}

	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ? AND bank_balance >= ?", id, amount).
		UpdateColumn("bank_balance", gorm.Expr("bank_balance - ?", amount))
	if result.Error != nil {
		if dberr.IsCheckViolation(result.Error) {
			return teamModel.ErrInsufficientFunds
		}
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if r.logger != nil {
		r.logger.Infow("debit rejected", "team_id", id, "amount", amount)
	}
	return teamModel.ErrInsufficientFunds
}

func (r *repository) valueQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("teams").
		Select("teams.id, teams.owner_id, teams.name, teams.country, teams.bank_balance, " +
			"COALESCE(SUM(players.market_value), 0) AS value").
		Joins("LEFT JOIN players ON players.team_id = teams.id").
		Group("teams.id, teams.owner_id, teams.name, teams.country, teams.bank_balance")
}

// GetWithValue returns the team together with its players' summed market value.
func (r *repository) GetWithValue(ctx context.Context, id int64) (*teamModel.TeamResponse, error) {
	var rows []teamModel.TeamResponse
	if err := r.valueQuery(ctx).Where("teams.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, teamModel.ErrTeamNotFound
	}
	return &rows[0], nil
}

// Rank returns up to limit teams ordered by value, highest first. Ties are
// broken by id so the order is stable.
func (r *repository) Rank(ctx context.Context, limit int) ([]teamModel.TeamResponse, error) {
	var rows []teamModel.TeamResponse
	err := r.valueQuery(ctx).
		Order("value DESC").
		Order("teams.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return []teamModel.TeamResponse{}, nil
	}
	return rows, nil
}
