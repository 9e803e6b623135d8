package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/dberr"
	"github.com/festy23/fantasy_league/internal/database/testdb"
	transferModel "github.com/festy23/fantasy_league/internal/transfer/model"
)

func setupRepo(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	stmts := []string{
		`INSERT INTO users (id, email, username, password_hash) VALUES (1, 'owner@example.com', 'owner@example.com', 'x')`,
		`INSERT INTO teams (id, owner_id, name, country) VALUES (1, 1, 'Owner United', 'GB')`,
		`INSERT INTO players (id, team_id, role, first_name, last_name, country, age) VALUES
			(1, 1, 'attacker', 'Ada', 'Stone', 'GB', 24),
			(2, 1, 'defender', 'Ben', 'Hart', 'IE', 29)`,
	}
	for _, s := range stmts {
		require.NoError(t, db.Exec(s).Error)
	}
	return New(db, zap.NewNop().Sugar()), db
}

func TestRepository_CreateAndGetActive(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	listing := &transferModel.Transfer{PlayerID: 1, Fee: 1_500_000, IsActive: true}
	require.NoError(t, repo.Create(ctx, listing))
	assert.NotZero(t, listing.ID)

	got, err := repo.GetActiveForUpdate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)
	assert.Equal(t, int64(1_500_000), got.Fee)

	_, err = repo.GetActiveForUpdate(ctx, 2)
	assert.ErrorIs(t, err, transferModel.ErrNoActiveListing)
}

func TestRepository_SecondActiveListingRejected(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &transferModel.Transfer{PlayerID: 1, Fee: 10, IsActive: true}))
	err := repo.Create(ctx, &transferModel.Transfer{PlayerID: 1, Fee: 20, IsActive: true})

	require.Error(t, err)
	assert.True(t, dberr.IsUniqueViolation(err), "unexpected error: %v", err)
}

func TestRepository_DeactivateActive(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	n, err := repo.DeactivateActive(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, &transferModel.Transfer{PlayerID: 1, Fee: 10, IsActive: true}))
	n, err = repo.DeactivateActive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Create(ctx, &transferModel.Transfer{PlayerID: 1, Fee: 20, IsActive: true}))
	got, err := repo.GetActiveForUpdate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.Fee)
}

func TestRepository_Deactivate(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	listing := &transferModel.Transfer{PlayerID: 2, Fee: 5, IsActive: true}
	require.NoError(t, repo.Create(ctx, listing))

	require.NoError(t, repo.Deactivate(ctx, listing.ID))
	assert.ErrorIs(t, repo.Deactivate(ctx, listing.ID), transferModel.ErrNoActiveListing)
	assert.ErrorIs(t, repo.Deactivate(ctx, 999), transferModel.ErrNoActiveListing)
}

func TestRepository_ListActive(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	empty, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	closed := &transferModel.Transfer{PlayerID: 1, Fee: 1, IsActive: false, CreatedAt: base.Add(2 * time.Hour)}
	older := &transferModel.Transfer{PlayerID: 1, Fee: 2, IsActive: true, CreatedAt: base}
	newer := &transferModel.Transfer{PlayerID: 2, Fee: 3, IsActive: true, CreatedAt: base.Add(time.Hour)}
	for _, l := range []*transferModel.Transfer{closed, older, newer} {
		require.NoError(t, repo.Create(ctx, l))
	}

	listings, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, newer.ID, listings[0].ID)
	assert.Equal(t, older.ID, listings[1].ID)
	require.NotNil(t, listings[0].Player)
	assert.Equal(t, "Ben", listings[0].Player.FirstName)
}
