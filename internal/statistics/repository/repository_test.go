package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/fantasy_league/internal/database/testdb"
	"github.com/festy23/fantasy_league/internal/statistics/model"
)

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO users (id, email, username, password_hash) VALUES (1, 'a@example.com', 'a@example.com', 'x')`,
		`INSERT INTO teams (id, owner_id, name, country, bank_balance) VALUES (1, 1, 'A United', 'GB', 100)`,
		`INSERT INTO players (id, team_id, role, first_name, last_name, country, age, market_value) VALUES
			(1, 1, 'attacker', 'A', 'A', 'GB', 20, 3000000),
			(2, 1, 'attacker', 'B', 'B', 'GB', 30, 1000000),
			(3, NULL, 'goal-keeper', 'C', 'C', 'FR', 25, 1000000)`,
		`INSERT INTO transfers (player_id, fee, is_active) VALUES
			(1, 500, FALSE),
			(1, 4000000, TRUE),
			(3, 1000000, TRUE)`,
	}
	for _, s := range stmts {
		require.NoError(t, db.Exec(s).Error)
	}
}

func TestRepository_GetRolesStatistics(t *testing.T) {
	db := testdb.New(t)
	seed(t, db)
	repo := New(db, zap.NewNop().Sugar())

	stats, err := repo.GetRolesStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, model.RoleStatistics{
		Role:         "attacker",
		Players:      2,
		TotalValue:   4_000_000,
		AverageValue: 2_000_000,
		AverageAge:   25,
	}, stats[0])
	assert.Equal(t, "goal-keeper", stats[1].Role)
	assert.Equal(t, 1, stats[1].Players)
}

func TestRepository_GetRolesStatistics_Empty(t *testing.T) {
	repo := New(testdb.New(t), zap.NewNop().Sugar())

	stats, err := repo.GetRolesStatistics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestRepository_GetMarketStatistics(t *testing.T) {
	db := testdb.New(t)
	seed(t, db)
	repo := New(db, zap.NewNop().Sugar())

	stats, err := repo.GetMarketStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &model.MarketStatistics{
		Teams:            1,
		Players:          3,
		FreeAgents:       1,
		TotalMarketValue: 5_000_000,
		ActiveListings:   2,
		ListedFeeTotal:   5_000_000,
		AverageListedFee: 2_500_000,
		ClosedListings:   1,
	}, stats)
}

func TestRepository_GetMarketStatistics_Empty(t *testing.T) {
	repo := New(testdb.New(t), zap.NewNop().Sugar())

	stats, err := repo.GetMarketStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.MarketStatistics{}, stats)
}
