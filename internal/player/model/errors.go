package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPlayerID indicates a missing or non-positive player id.
	ErrInvalidPlayerID = errors.New("invalid player id")
)
