package repository

import (
	"context"

	appErr "github.com/droplaunch/waitlist/pkg/errors"
	"gorm.io/gorm"
)

// schemaLockKey is the advisory lock id held while the schema is created.
const schemaLockKey int64 = 0x7761_69746c_6973

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS registrations (
		id         BIGSERIAL PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_created_at
		ON registrations (created_at DESC, id DESC)`,
}

// EnsureSchema creates the registrations table and its index when missing.
// Concurrent callers serialize on a transaction-scoped advisory lock, since
// CREATE TABLE IF NOT EXISTS alone can still fail on the catalog race.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", schemaLockKey).Error; err != nil {
			return err
		}
		for _, stmt := range schemaStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return appErr.StorageFault(err, "ensure schema failed")
	}
	return nil
}
