package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamID indicates a missing or non-positive team id.
	ErrInvalidTeamID = errors.New("invalid team id")
	// ErrTeamExists indicates that the owner already has a team.
	ErrTeamExists = errors.New("owner already has a team")
	// ErrInsufficientFunds indicates that a debit would take the bank balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBalanceOverflow indicates that a credit would exceed the largest storable balance.
	ErrBalanceOverflow = errors.New("bank balance would overflow")
	// ErrInvalidAmount indicates a negative credit or debit amount.
	ErrInvalidAmount = errors.New("amount must be non-negative")
)
