// Package atomic runs a unit of work in one database transaction and
// defers side effects until that transaction has committed.
package atomic

import (
	"context"

	"gorm.io/gorm"
)

// Hooks collects callbacks registered while a transaction is open.
type Hooks struct {
	afterCommit []func()
}

// AfterCommit registers fn to run once the transaction commits.
// It is dropped if the transaction rolls back.
func (h *Hooks) AfterCommit(fn func()) {
	if fn == nil {
		return
	}
	h.afterCommit = append(h.afterCommit, fn)
}

// Run executes fn inside a transaction and then runs the registered
// after-commit callbacks in registration order.
func Run(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB, hooks *Hooks) error) error {
	hooks := &Hooks{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx, hooks)
	})
	if err != nil {
		return err
	}

	for _, cb := range hooks.afterCommit {
		cb()
	}
	return nil
}
