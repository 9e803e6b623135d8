// Package model provides domain models and DTOs for transfer module.
package model

import (
	"time"

	playerModel "github.com/festy23/fantasy_league/internal/player/model"
)

// Transfer is a listing that offers a player for sale at a fee.
// Matches the transfers table schema; at most one row per player is active.
type Transfer struct {
	ID        int64               `gorm:"primaryKey;column:id" json:"id"`
	PlayerID  int64               `gorm:"column:player_id;not null" json:"player_id"`
	Fee       int64               `gorm:"column:fee;not null" json:"fee"`
	IsActive  bool                `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time           `gorm:"column:created_at" json:"created_at"`
	Player    *playerModel.Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
}

// TableName specifies the table name for GORM.
func (Transfer) TableName() string {
	return "transfers"
}
