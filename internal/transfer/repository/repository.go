// Package repository provides data access layer for transfer module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	transferModel "github.com/festy23/fantasy_league/internal/transfer/model"
)

// Repository defines the interface for transfer data access operations.
type Repository interface {
	// Create inserts a listing.
	Create(ctx context.Context, transfer *transferModel.Transfer) error

	// DeactivateActive closes the player's active listing, if any, and
	// reports how many rows changed.
	DeactivateActive(ctx context.Context, playerID int64) (int64, error)

	// GetActiveForUpdate returns the player's active listing under a row lock.
	GetActiveForUpdate(ctx context.Context, playerID int64) (*transferModel.Transfer, error)

	// Deactivate closes a listing by id.
	Deactivate(ctx context.Context, id int64) error

	// ListActive returns open listings with their players, newest first.
	ListActive(ctx context.Context) ([]transferModel.Transfer, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new transfer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a listing.
func (r *repository) Create(ctx context.Context, transfer *transferModel.Transfer) error {
	return r.db.WithContext(ctx).Create(transfer).Error
}

// DeactivateActive closes the player's active listing, if any.
func (r *repository) DeactivateActive(ctx context.Context, playerID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&transferModel.Transfer{}).
		Where("player_id = ? AND is_active = ?", playerID, true).
		UpdateColumn("is_active", false)
	return result.RowsAffected, result.Error
}

// GetActiveForUpdate returns the player's active listing under a row lock.
func (r *repository) GetActiveForUpdate(ctx context.Context, playerID int64) (*transferModel.Transfer, error) {
	var transfer transferModel.Transfer
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("player_id = ? AND is_active = ?", playerID, true).
		First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transferModel.ErrNoActiveListing
		}
		return nil, err
	}
	return &transfer, nil
}

// Deactivate closes a listing by id.
func (r *repository) Deactivate(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&transferModel.Transfer{}).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return transferModel.ErrNoActiveListing
	}
	return nil
}

// ListActive returns open listings with their players, newest first.
func (r *repository) ListActive(ctx context.Context) ([]transferModel.Transfer, error) {
	var transfers []transferModel.Transfer
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	if transfers == nil {
		return []transferModel.Transfer{}, nil
	}
	return transfers, nil
}
