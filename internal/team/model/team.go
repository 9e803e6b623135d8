// Package model provides domain models and DTOs for team module.
package model

import "time"

// DefaultBankBalance is the opening balance of a newly created team.
const DefaultBankBalance int64 = 5_000_000

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	OwnerID     int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Country     string    `gorm:"column:country;not null" json:"country"`
	BankBalance int64     `gorm:"column:bank_balance;not null" json:"bank_balance"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
