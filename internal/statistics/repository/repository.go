// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetRolesStatistics returns player aggregates per role.
	GetRolesStatistics(ctx context.Context) ([]model.RoleStatistics, error)

	// GetMarketStatistics returns league-wide and transfer market aggregates.
	GetMarketStatistics(ctx context.Context) (*model.MarketStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetRolesStatistics returns player aggregates per role.
func (r *repository) GetRolesStatistics(ctx context.Context) ([]model.RoleStatistics, error) {
	var stats []model.RoleStatistics

	err := r.db.WithContext(ctx).
		Table("players").
		Select(`
			role,
			COUNT(*) as players,
			COALESCE(SUM(market_value), 0) as total_value,
			COALESCE(AVG(CAST(market_value AS REAL)), 0) as average_value,
			COALESCE(AVG(CAST(age AS REAL)), 0) as average_age
		`).
		Group("role").
		Order("total_value DESC, role ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetRolesStatistics database error", "error", err)
		return nil, err
	}

	if stats == nil {
		stats = []model.RoleStatistics{}
	}

	return stats, nil
}

// GetMarketStatistics returns league-wide and transfer market aggregates.
func (r *repository) GetMarketStatistics(ctx context.Context) (*model.MarketStatistics, error) {
	var result struct {
		Teams            int64   `gorm:"column:teams"`
		Players          int64   `gorm:"column:players"`
		FreeAgents       int64   `gorm:"column:free_agents"`
		TotalMarketValue int64   `gorm:"column:total_market_value"`
		ActiveListings   int64   `gorm:"column:active_listings"`
		ListedFeeTotal   int64   `gorm:"column:listed_fee_total"`
		AverageListedFee float64 `gorm:"column:average_listed_fee"`
		ClosedListings   int64   `gorm:"column:closed_listings"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM teams) as teams,
			(SELECT COUNT(*) FROM players) as players,
			(SELECT COUNT(*) FROM players WHERE team_id IS NULL) as free_agents,
			(SELECT COALESCE(SUM(market_value), 0) FROM players) as total_market_value,
			(SELECT COUNT(*) FROM transfers WHERE is_active) as active_listings,
			(SELECT COALESCE(SUM(fee), 0) FROM transfers WHERE is_active) as listed_fee_total,
			(SELECT COALESCE(AVG(CAST(fee AS REAL)), 0) FROM transfers WHERE is_active) as average_listed_fee,
			(SELECT COUNT(*) FROM transfers WHERE NOT is_active) as closed_listings
	`).Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetMarketStatistics database error", "error", err)
		return nil, err
	}

	return &model.MarketStatistics{
		Teams:            int(result.Teams),
		Players:          int(result.Players),
		FreeAgents:       int(result.FreeAgents),
		TotalMarketValue: result.TotalMarketValue,
		ActiveListings:   int(result.ActiveListings),
		ListedFeeTotal:   result.ListedFeeTotal,
		AverageListedFee: result.AverageListedFee,
		ClosedListings:   int(result.ClosedListings),
	}, nil
}
