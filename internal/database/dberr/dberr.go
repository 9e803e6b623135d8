// Package dberr classifies driver errors from PostgreSQL and SQLite.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	codeOutOfRange       = "22003"
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeLockNotAvailable = "55P03"
	codeDeadlockDetected = "40P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a duplicate key error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == codeUniqueViolation {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// IsCheckViolation reports whether err is a CHECK constraint failure.
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || pgCode(err) == codeCheckViolation {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates check constraint") || strings.Contains(msg, "CHECK constraint failed")
}

// IsOutOfRange reports whether a numeric result did not fit its column type.
func IsOutOfRange(err error) bool {
	if err == nil {
		return false
	}
	if pgCode(err) == codeOutOfRange {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "out of range") || strings.Contains(msg, "integer overflow")
}

// IsLockNotAvailable reports whether a row lock could not be taken in time.
// Deadlocks count as well since the losing transaction is rolled back the same way.
func IsLockNotAvailable(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case codeLockNotAvailable, codeDeadlockDetected:
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "lock timeout") || strings.Contains(msg, "database is locked")
}
