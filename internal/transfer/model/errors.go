package model

import "errors"

var (
	// ErrNoActiveListing indicates that the player is not currently for sale.
	ErrNoActiveListing = errors.New("no active transfer for player")
	// ErrInvalidFee indicates a negative fee.
	ErrInvalidFee = errors.New("fee must be non-negative")
	// ErrLockTimeout indicates that the player could not be locked in time.
	// The operation had no effect and may be retried.
	ErrLockTimeout = errors.New("timed out waiting for player lock")
)
