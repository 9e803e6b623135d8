package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID indicates that the provided user ID is not a positive integer.
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidEmail indicates that the e-mail address cannot be parsed.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrEmailTaken indicates that another account uses the e-mail address.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrPasswordTooShort indicates that the password is below the minimum length.
	ErrPasswordTooShort = errors.New("password is too short")
	// ErrInvalidVerificationCode indicates that the verification code does not match.
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	// ErrAlreadyVerified indicates that the e-mail address is already verified.
	ErrAlreadyVerified = errors.New("email is already verified")
)
