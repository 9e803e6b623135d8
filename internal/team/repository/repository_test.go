package repository

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/testdb"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
)

func createOwner(t *testing.T, db *gorm.DB, id int64) {
	t.Helper()
	email := fmt.Sprintf("owner%d@example.com", id)
	require.NoError(t, db.Exec(
		"INSERT INTO users (id, email, username, password_hash) VALUES (?, ?, ?, ?)",
		id, email, email, "hash").Error)
}

func createTeam(t *testing.T, db *gorm.DB, ownerID, balance int64) *teamModel.Team {
	t.Helper()
	createOwner(t, db, ownerID)
	team := &teamModel.Team{OwnerID: ownerID, Name: fmt.Sprintf("Team %d", ownerID), Country: "GB", BankBalance: balance}
	require.NoError(t, db.Create(team).Error)
	return team
}

func addPlayer(t *testing.T, db *gorm.DB, teamID *int64, value int64) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO players (team_id, role, first_name, last_name, country, age, market_value) VALUES (?, ?, ?, ?, ?, ?, ?)",
		teamID, "defender", "Sam", "Doe", "GB", 25, value).Error)
}

func balanceOf(t *testing.T, db *gorm.DB, id int64) int64 {
	t.Helper()
	var team teamModel.Team
	require.NoError(t, db.First(&team, id).Error)
	return team.BankBalance
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		createOwner(t, db, 1)

		team := &teamModel.Team{OwnerID: 1, Name: "Rovers", Country: "GB", BankBalance: teamModel.DefaultBankBalance}
		require.NoError(t, repo.Create(ctx, team))
		assert.NotZero(t, team.ID)

		got, err := repo.GetByOwner(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Rovers", got.Name)
		assert.Equal(t, int64(5_000_000), got.BankBalance)
	})

	t.Run("owner already has a team", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		createTeam(t, db, 1, 100)

		err := repo.Create(ctx, &teamModel.Team{OwnerID: 1, Name: "Second", Country: "GB"})
		assert.ErrorIs(t, err, teamModel.ErrTeamExists)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	team := createTeam(t, db, 1, 100)

	got, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.Name, got.Name)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)

	_, err = repo.GetByOwner(ctx, 999)
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}

func TestRepository_DeleteByOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("players become unassigned", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		team := createTeam(t, db, 1, 100)
		addPlayer(t, db, &team.ID, 1_000_000)
		addPlayer(t, db, &team.ID, 1_000_000)

		require.NoError(t, repo.DeleteByOwner(ctx, 1))

		_, err := repo.GetByOwner(ctx, 1)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)

		var orphans int64
		require.NoError(t, db.Table("players").Where("team_id IS NULL").Count(&orphans).Error)
		assert.Equal(t, int64(2), orphans)
	})

	t.Run("no team is a no-op", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		assert.NoError(t, repo.DeleteByOwner(ctx, 42))
	})
}

func TestRepository_LockByIDs(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	a := createTeam(t, db, 1, 100)
	b := createTeam(t, db, 2, 200)

	teams, err := repo.LockByIDs(ctx, b.ID, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, a.ID, teams[0].ID)
	assert.Equal(t, b.ID, teams[1].ID)

	_, err = repo.LockByIDs(ctx, a.ID, 999)
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}

func TestRepository_CreditDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("credit", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		team := createTeam(t, db, 1, 5_000_000)

		require.NoError(t, repo.Credit(ctx, team.ID, 1_000_000))
		assert.Equal(t, int64(6_000_000), balanceOf(t, db, team.ID))
	})

	t.Run("credit past int64 max is rejected", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		team := createTeam(t, db, 1, 5_000_000)

		err := repo.Credit(ctx, team.ID, math.MaxInt64)
		assert.ErrorIs(t, err, teamModel.ErrBalanceOverflow)
		assert.Equal(t, int64(5_000_000), balanceOf(t, db, team.ID))

		require.NoError(t, repo.Credit(ctx, team.ID, math.MaxInt64-5_000_000))
		assert.Equal(t, int64(math.MaxInt64), balanceOf(t, db, team.ID))
	})

	t.Run("debit to exactly zero", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		team := createTeam(t, db, 1, 1_000_000)

		require.NoError(t, repo.Debit(ctx, team.ID, 1_000_000))
		assert.Zero(t, balanceOf(t, db, team.ID))
	})

	t.Run("debit below zero is rejected", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		team := createTeam(t, db, 1, 0)

		err := repo.Debit(ctx, team.ID, 1_000_000)
		assert.ErrorIs(t, err, teamModel.ErrInsufficientFunds)
		assert.Zero(t, balanceOf(t, db, team.ID))
	})

	t.Run("check constraint backs the guard", func(t *testing.T) {
		db := testdb.New(t)
		team := createTeam(t, db, 1, 10)

		err := db.Model(&teamModel.Team{}).Where("id = ?", team.ID).
			UpdateColumn("bank_balance", gorm.Expr("bank_balance - ?", 11)).Error
		assert.Error(t, err)
	})

	t.Run("unknown team", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())

		assert.ErrorIs(t, repo.Credit(ctx, 999, 1), teamModel.ErrTeamNotFound)
		assert.ErrorIs(t, repo.Debit(ctx, 999, 1), teamModel.ErrTeamNotFound)
	})

	t.Run("negative amount", func(t *testing.T) {
		db := testdb.New(t)
		repo := New(db, zap.NewNop().Sugar())
		team := createTeam(t, db, 1, 10)

		assert.ErrorIs(t, repo.Credit(ctx, team.ID, -1), teamModel.ErrInvalidAmount)
		assert.ErrorIs(t, repo.Debit(ctx, team.ID, -1), teamModel.ErrInvalidAmount)
	})
}

func TestRepository_Value(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())

	rich := createTeam(t, db, 1, 100)
	poor := createTeam(t, db, 2, 100)
	empty := createTeam(t, db, 3, 100)
	addPlayer(t, db, &rich.ID, 3_000_000)
	addPlayer(t, db, &rich.ID, 2_000_000)
	addPlayer(t, db, &poor.ID, 1_000_000)
	addPlayer(t, db, nil, 9_000_000)

	t.Run("get with value", func(t *testing.T) {
		got, err := repo.GetWithValue(ctx, rich.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5_000_000), got.Value)
		assert.Equal(t, rich.Name, got.Name)

		got, err = repo.GetWithValue(ctx, empty.ID)
		require.NoError(t, err)
		assert.Zero(t, got.Value)

		_, err = repo.GetWithValue(ctx, 999)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("rank orders by value", func(t *testing.T) {
		ranking, err := repo.Rank(ctx, 10)
		require.NoError(t, err)
		require.Len(t, ranking, 3)
		assert.Equal(t, rich.ID, ranking[0].ID)
		assert.Equal(t, poor.ID, ranking[1].ID)
		assert.Equal(t, empty.ID, ranking[2].ID)
	})

	t.Run("rank honours limit", func(t *testing.T) {
		ranking, err := repo.Rank(ctx, 1)
		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, rich.ID, ranking[0].ID)
	})
}
