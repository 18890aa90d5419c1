package repository

import (
	"context"
	"errors"

	"github.com/questx-lab/person-api/pkg/xcontext"
	"gorm.io/gorm"
)

// ErrNotFound is returned by Update when the row to replace does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// Repository is the CRUD surface shared by every table. GetByID returns nil without
// error when no row has the given id.
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repository[T any] struct{}

func newRepository[T any]() repository[T] {
	return repository[T]{}
}

func (r repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var result T
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &result, nil
}

func (r repository[T]) GetAll(ctx context.Context) ([]T, error) {
	result := []T{}
	if err := xcontext.DB(ctx).Order("id ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// Add inserts e and fills its generated primary key.
func (r repository[T]) Add(ctx context.Context, e *T) error {
	return xcontext.DB(ctx).Create(e).Error
}

// Update replaces every column of the row identified by the primary key of e.
func (r repository[T]) Update(ctx context.Context, e *T) error {
	tx := xcontext.DB(ctx).Model(e).Select("*").Omit("id").Updates(e)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r repository[T]) Delete(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Delete(new(T), "id=?", id).Error
}

func (r repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(new(T)).Where("id=?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
