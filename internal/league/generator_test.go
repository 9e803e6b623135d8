package league

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/festy23/fantasy_league/internal/country"
	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
)

func TestGenerator_Team(t *testing.T) {
	gen := NewGenerator(1)

	team := gen.Team(7, "Alex")
	assert.Equal(t, int64(7), team.OwnerID)
	assert.Equal(t, "Alex United", team.Name)
	assert.Equal(t, teamModel.DefaultBankBalance, team.BankBalance)
	assert.True(t, country.Valid(team.Country), "country %q", team.Country)
}

func TestGenerator_TeamWithoutOwnerName(t *testing.T) {
	team := NewGenerator(1).Team(7, "  ")
	assert.NotEqual(t, " United", team.Name)
	assert.Regexp(t, `^\S.* United$`, team.Name)
}

func TestGenerator_Players(t *testing.T) {
	gen := NewGenerator(42)

	players := gen.Players(3)
	assert.Len(t, players, SquadSize())
	assert.Equal(t, 20, SquadSize())

	roles := make(map[playerModel.Role]int)
	for _, p := range players {
		roles[p.Role]++
		if assert.NotNil(t, p.TeamID) {
			assert.Equal(t, int64(3), *p.TeamID)
		}
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		assert.True(t, country.Valid(p.Country), "country %q", p.Country)
		assert.GreaterOrEqual(t, p.Age, MinPlayerAge)
		assert.LessOrEqual(t, p.Age, MaxPlayerAge)
		assert.Equal(t, playerModel.DefaultMarketValue, p.MarketValue)
	}

	assert.Equal(t, map[playerModel.Role]int{
		playerModel.RoleGoalkeeper: 3,
		playerModel.RoleDefender:   6,
		playerModel.RoleMidfielder: 6,
		playerModel.RoleAttacker:   5,
	}, roles)
}

func TestGenerator_PlayersDoNotShareTeamID(t *testing.T) {
	players := NewGenerator(1).Players(3)
	*players[0].TeamID = 99
	assert.Equal(t, int64(3), *players[1].TeamID)
}

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	a := NewGenerator(5).Players(1)
	b := NewGenerator(5).Players(1)
	assert.Equal(t, a, b)
}
