// Package service implements the transfer engine: listing players for sale,
// completing purchases and administrative moves. Every operation on a
// player runs under that player's lock and inside one database transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/dberr"
	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	playerRepository "github.com/festy23/fantasy_league/internal/player/repository"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
	teamRepository "github.com/festy23/fantasy_league/internal/team/repository"
	transferModel "github.com/festy23/fantasy_league/internal/transfer/model"
	"github.com/festy23/fantasy_league/internal/transfer/repository"
	"github.com/festy23/fantasy_league/internal/transfer/valuation"
	"github.com/festy23/fantasy_league/pkg/keylock"
)

// DefaultLockTimeout bounds the wait for a player lock when Config leaves it unset.
const DefaultLockTimeout = 5 * time.Second

// Service defines the transfer engine operations.
type Service interface {
	// ListForSale opens a listing for the player, replacing any open one.
	// A nil fee lists the player at their market value.
	ListForSale(ctx context.Context, playerID int64, fee *int64) (*transferModel.SellResponse, error)

	// Acquire completes the player's open listing on behalf of teamID.
	Acquire(ctx context.Context, playerID, teamID int64) (*transferModel.AcquireResponse, error)

	// Move assigns the player to teamID without payment or revaluation.
	Move(ctx context.Context, playerID, teamID int64) (*transferModel.MoveResponse, error)

	// ListActive returns open listings, newest first.
	ListActive(ctx context.Context) ([]transferModel.Transfer, error)
}

// Config tunes the engine.
type Config struct {
	Sampler     valuation.Sampler
	Clock       clockwork.Clock
	LockTimeout time.Duration
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	cfg    Config
	locks  *keylock.Locker[int64]
	logger *zap.SugaredLogger
}

// New creates a new transfer engine. Sampler is required.
func New(repo repository.Repository, db *gorm.DB, cfg Config, logger *zap.SugaredLogger) Service {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = DefaultLockTimeout
	}
	return &service{
		repo:   repo,
		db:     db,
		cfg:    cfg,
		locks:  keylock.New[int64](),
		logger: logger,
	}
}

// ListForSale opens a listing for the player, replacing any open one.
func (s *service) ListForSale(ctx context.Context, playerID int64, fee *int64) (*transferModel.SellResponse, error) {
	if playerID <= 0 {
		return nil, playerModel.ErrInvalidPlayerID
	}
	if fee != nil && *fee < 0 {
		return nil, transferModel.ErrInvalidFee
	}

	var result *transferModel.SellResponse
	err := s.withPlayerLock(ctx, playerID, func(tx *gorm.DB) error {
		player, err := playerRepository.New(tx, s.logger).LockByID(ctx, playerID)
		if err != nil {
			return err
		}

		price := player.MarketValue
		if fee != nil {
			price = *fee
		}

		txRepo := repository.New(tx, s.logger)
		closed, err := txRepo.DeactivateActive(ctx, playerID)
		if err != nil {
			return fmt.Errorf("failed to close previous listing: %w", err)
		}

		listing := &transferModel.Transfer{
			PlayerID:  playerID,
			Fee:       price,
			IsActive:  true,
			CreatedAt: s.cfg.Clock.Now(),
		}
		if err := txRepo.Create(ctx, listing); err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}

		s.logger.Infow("player listed for sale",
			"player_id", playerID,
			"transfer_id", listing.ID,
			"fee", price,
			"replaced", closed)

		result = &transferModel.SellResponse{PlayerID: playerID, Fee: price}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Acquire completes the player's open listing on behalf of teamID.
//
// Inside one transaction it locks the player, closes the listing, credits
// the seller, debits the buyer, revalues the player and reassigns them.
// The listing is closed before the debit so that a failed debit rolls the
// closure back with everything else.
func (s *service) Acquire(ctx context.Context, playerID, teamID int64) (*transferModel.AcquireResponse, error) {
	if playerID <= 0 {
		return nil, playerModel.ErrInvalidPlayerID
	}
	if teamID <= 0 {
		return nil, teamModel.ErrInvalidTeamID
	}

	var result *transferModel.AcquireResponse
	err := s.withPlayerLock(ctx, playerID, func(tx *gorm.DB) error {
		players := playerRepository.New(tx, s.logger)
		teams := teamRepository.New(tx, s.logger)
		transfers := repository.New(tx, s.logger)

		player, err := players.LockByID(ctx, playerID)
		if err != nil {
			return err
		}
		if _, err := teams.GetByID(ctx, teamID); err != nil {
			return err
		}

		listing, err := transfers.GetActiveForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if err := transfers.Deactivate(ctx, listing.ID); err != nil {
			return err
		}

		lockIDs := []int64{teamID}
		if player.TeamID != nil {
			lockIDs = append(lockIDs, *player.TeamID)
		}
		if _, err := teams.LockByIDs(ctx, lockIDs...); err != nil {
			return err
		}

		if player.TeamID != nil {
			if err := teams.Credit(ctx, *player.TeamID, listing.Fee); err != nil {
				return fmt.Errorf("failed to credit seller: %w", err)
			}
		}
		if err := teams.Debit(ctx, teamID, listing.Fee); err != nil {
			return err
		}

		newValue := valuation.Inflate(player.MarketValue, s.cfg.Sampler.Factor())
		if err := players.Reassign(ctx, playerID, teamID, newValue); err != nil {
			return err
		}

		result = &transferModel.AcquireResponse{
			PlayerID:      playerID,
			FromTeamID:    player.TeamID,
			ToTeamID:      teamID,
			Fee:           listing.Fee,
			PreviousValue: player.MarketValue,
			MarketValue:   newValue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player acquired",
		"player_id", playerID,
		"from_team_id", result.FromTeamID,
		"to_team_id", teamID,
		"fee", result.Fee,
		"market_value", result.MarketValue)
	return result, nil
}

// Move assigns the player to teamID without payment or revaluation.
// Open listings are left untouched.
func (s *service) Move(ctx context.Context, playerID, teamID int64) (*transferModel.MoveResponse, error) {
	if playerID <= 0 {
		return nil, playerModel.ErrInvalidPlayerID
	}
	if teamID <= 0 {
		return nil, teamModel.ErrInvalidTeamID
	}

	var result *transferModel.MoveResponse
	err := s.withPlayerLock(ctx, playerID, func(tx *gorm.DB) error {
		players := playerRepository.New(tx, s.logger)

		player, err := players.LockByID(ctx, playerID)
		if err != nil {
			return err
		}
		if _, err := teamRepository.New(tx, s.logger).GetByID(ctx, teamID); err != nil {
			return err
		}
		if err := players.SetTeam(ctx, playerID, teamID); err != nil {
			return err
		}

		result = &transferModel.MoveResponse{PlayerID: playerID, FromTeamID: player.TeamID, ToTeamID: teamID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player moved", "player_id", playerID, "from_team_id", result.FromTeamID, "to_team_id", teamID)
	return result, nil
}

// ListActive returns open listings, newest first.
func (s *service) ListActive(ctx context.Context) ([]transferModel.Transfer, error) {
	return s.repo.ListActive(ctx)
}

// withPlayerLock runs fn in a transaction while holding the in-process lock
// for playerID. The lock is taken before the transaction begins so waiting
// callers do not hold a connection.
func (s *service) withPlayerLock(ctx context.Context, playerID int64, fn func(tx *gorm.DB) error) error {
	lockCtx, cancel := context.WithTimeout(ctx, s.cfg.LockTimeout)
	release, err := s.locks.Lock(lockCtx, playerID)
	cancel()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Warnw("player lock wait timed out", "player_id", playerID, "timeout", s.cfg.LockTimeout)
		return transferModel.ErrLockTimeout
	}
	defer release()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx, s.cfg.LockTimeout); err != nil {
			return err
		}
		return fn(tx)
	})
	if err != nil && dberr.IsLockNotAvailable(err) {
		s.logger.Warnw("row lock wait timed out", "player_id", playerID, "error", err)
		return transferModel.ErrLockTimeout
	}
	return err
}

// setLockTimeout bounds row lock waits for the rest of the transaction.
// SET does not accept bind parameters, hence the formatted statement.
func setLockTimeout(tx *gorm.DB, timeout time.Duration) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())
	if err := tx.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}
	return nil
}

// IsRetryable reports whether err leaves no trace and the caller may try again.
func IsRetryable(err error) bool {
	return errors.Is(err, transferModel.ErrLockTimeout)
}
