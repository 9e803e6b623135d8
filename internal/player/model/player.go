// Package model provides domain models and DTOs for player module.
package model

import "time"

// DefaultMarketValue is the market value of a freshly generated player.
const DefaultMarketValue int64 = 1_000_000

// Role is a player's position on the pitch.
type Role string

// Player roles.
const (
	RoleGoalkeeper Role = "goal-keeper"
	RoleDefender   Role = "defender"
	RoleMidfielder Role = "mid-fielder"
	RoleAttacker   Role = "attacker"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleAttacker:
		return true
	}
	return false
}

// Player represents a player entity.
// Matches the players table schema.
type Player struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	TeamID      *int64    `gorm:"column:team_id" json:"team_id"`
	Role        Role      `gorm:"column:role;not null" json:"role"`
	FirstName   string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName    string    `gorm:"column:last_name;not null" json:"last_name"`
	Country     string    `gorm:"column:country;not null" json:"country"`
	Age         int       `gorm:"column:age;not null" json:"age"`
	MarketValue int64     `gorm:"column:market_value;not null" json:"market_value"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}
