package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("foreign key violation")
)

// CRUD is the shape every entity repository shares.
type CRUD[T any] interface {
	List(ctx context.Context, skip, limit int) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type crud[T any] struct {
	db *gorm.DB
}

func (r crud[T]) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r crud[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	var rows []T
	err := r.conn(ctx).Order("id").Offset(skip).Limit(limit).Find(&rows).Error
	return rows, err
}

func (r crud[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.conn(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r crud[T]) Create(ctx context.Context, row *T) error {
	return translate(r.conn(ctx).Omit(clause.Associations).Create(row).Error)
}

func (r crud[T]) Update(ctx context.Context, row *T) error {
	return translate(r.conn(ctx).Omit(clause.Associations).Save(row).Error)
}

func (r crud[T]) Delete(ctx context.Context, id uint) error {
	result := r.conn(ctx).Delete(new(T), id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r crud[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func (r crud[T]) find(ctx context.Context, query any, args ...any) ([]T, error) {
	var rows []T
	err := r.conn(ctx).Where(query, args...).Order("id").Find(&rows).Error
	return rows, err
}

func (r crud[T]) first(ctx context.Context, query any, args ...any) (*T, error) {
	var row T
	if err := r.conn(ctx).Where(query, args...).Order("id").First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// exists reports whether a row other than excludeID has column equal to value.
func (r crud[T]) exists(ctx context.Context, column string, value any, excludeID uint) (bool, error) {
	var n int64
	q := r.conn(ctx).Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}
	return err
}
