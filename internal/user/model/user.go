// Package model provides domain models and DTOs for user module.
package model

import (
	"strings"
	"time"
)

// User represents an account that owns at most one team.
// Matches the users table schema.
type User struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"column:email;not null" json:"email"`
	Username     string    `gorm:"column:username;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName    string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string    `gorm:"column:last_name;not null" json:"last_name"`
	IsStaff      bool      `gorm:"column:is_staff;not null" json:"is_staff"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// DisplayName returns the full name, or the username when no name is set.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.Username
}

// EmailVerification holds the code a user confirms their e-mail with.
type EmailVerification struct {
	ID         int64  `gorm:"primaryKey;column:id" json:"-"`
	UserID     int64  `gorm:"column:user_id;not null" json:"user_id"`
	Code       string `gorm:"column:code;not null" json:"-"`
	IsVerified bool   `gorm:"column:is_verified;not null" json:"is_verified"`
}

// TableName specifies the table name for GORM.
func (EmailVerification) TableName() string {
	return "email_verifications"
}
