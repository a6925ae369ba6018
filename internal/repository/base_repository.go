package repository

import (
	"context"

	appErr "github.com/droplaunch/waitlist/pkg/errors"
	"gorm.io/gorm"
)

// ReadRepository defines the read operations shared by append-only tables.
type ReadRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

type readRepository[T any] struct {
	db    *gorm.DB
	order []string
}

// NewReadRepository lists rows of T in the given ORDER BY terms.
func NewReadRepository[T any](db *gorm.DB, order ...string) ReadRepository[T] {
	return &readRepository[T]{db: db, order: order}
}

func (r *readRepository[T]) List(ctx context.Context) ([]T, error) {
	q := r.db.WithContext(ctx)
	for _, o := range r.order {
		q = q.Order(o)
	}
	out := []T{}
	if err := q.Find(&out).Error; err != nil {
		return nil, appErr.StorageFault(err, "list entities failed")
	}
	return out, nil
}

func (r *readRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	var t T
	if err := r.db.WithContext(ctx).Model(&t).Count(&n).Error; err != nil {
		return 0, appErr.StorageFault(err, "count entities failed")
	}
	return n, nil
}
