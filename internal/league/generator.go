// Package league creates the starting squad a new owner plays with.
package league

import (
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/festy23/fantasy_league/internal/country"
	playerModel "github.com/festy23/fantasy_league/internal/player/model"
	teamModel "github.com/festy23/fantasy_league/internal/team/model"
)

// Squad composition of a generated team.
var squad = []struct {
	role  playerModel.Role
	count int
}{
	{playerModel.RoleGoalkeeper, 3},
	{playerModel.RoleDefender, 6},
	{playerModel.RoleMidfielder, 6},
	{playerModel.RoleAttacker, 5},
}

// Player age bounds, inclusive.
const (
	MinPlayerAge = 20
	MaxPlayerAge = 35
)

// SquadSize is the number of players in a generated team.
func SquadSize() int {
	n := 0
	for _, s := range squad {
		n += s.count
	}
	return n
}

// Generator produces random teams and players.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewGenerator creates a generator. A zero seed draws from a random source.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Team returns an unsaved team for ownerID named after ownerName.
func (g *Generator) Team(ownerID int64, ownerName string) teamModel.Team {
	g.mu.Lock()
	defer g.mu.Unlock()

	name := strings.TrimSpace(ownerName)
	if name == "" {
		name = g.faker.City()
	}

	return teamModel.Team{
		OwnerID:     ownerID,
		Name:        name + " United",
		Country:     g.country(),
		BankBalance: teamModel.DefaultBankBalance,
	}
}

// Players returns an unsaved squad assigned to teamID.
func (g *Generator) Players(teamID int64) []playerModel.Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := make([]playerModel.Player, 0, SquadSize())
	for _, s := range squad {
		for range s.count {
			id := teamID
			players = append(players, playerModel.Player{
				TeamID:      &id,
				Role:        s.role,
				FirstName:   g.faker.FirstName(),
				LastName:    g.faker.LastName(),
				Country:     g.country(),
				Age:         g.faker.IntRange(MinPlayerAge, MaxPlayerAge),
				MarketValue: playerModel.DefaultMarketValue,
			})
		}
	}
	return players
}

func (g *Generator) country() string {
	countries := country.List()
	return countries[g.faker.IntRange(0, len(countries)-1)].Code
}
