package repository

import (
	"context"

	"github.com/droplaunch/waitlist/internal/models"
	appErr "github.com/droplaunch/waitlist/pkg/errors"
	"gorm.io/gorm"
)

const insertRegistrationSQL = `INSERT INTO registrations (email) VALUES (?) ON CONFLICT (email) DO NOTHING`

// RegistrationRepository owns the registrations table.
type RegistrationRepository interface {
	ReadRepository[models.Registration]
	// Insert stores email unless it is already present. created is false
	// when the unique constraint absorbed a duplicate.
	Insert(ctx context.Context, email string) (created bool, err error)
}

type registrationRepository struct {
	ReadRepository[models.Registration]
	db *gorm.DB
}

// NewRegistrationRepository lists newest first: created_at DESC, then id DESC
// for rows sharing a timestamp.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{
		ReadRepository: NewReadRepository[models.Registration](db, "created_at DESC", "id DESC"),
		db:             db,
	}
}

func (r *registrationRepository) Insert(ctx context.Context, email string) (bool, error) {
	res := r.db.WithContext(ctx).Exec(insertRegistrationSQL, email)
	if res.Error != nil {
		return false, appErr.StorageFault(res.Error, "insert registration failed")
	}
	return res.RowsAffected == 1, nil
}
