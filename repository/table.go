package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type TableRepository interface {
	CRUD[model.Table]
	FindByNumber(ctx context.Context, number string) (*model.Table, error)
	FindBySize(ctx context.Context, size int) ([]model.Table, error)
	FindByOccupied(ctx context.Context, occupied bool) ([]model.Table, error)
	FindAvailableBySize(ctx context.Context, size int) ([]model.Table, error)
	SetOccupied(ctx context.Context, id uint, occupied bool) (*model.Table, error)
}

type tableRepository struct {
	crud[model.Table]
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{crud[model.Table]{db: db}}
}

func (r *tableRepository) FindByNumber(ctx context.Context, number string) (*model.Table, error) {
	return r.first(ctx, "table_number = ?", number)
}

func (r *tableRepository) FindBySize(ctx context.Context, size int) ([]model.Table, error) {
	return r.find(ctx, "table_size = ?", size)
}

func (r *tableRepository) FindByOccupied(ctx context.Context, occupied bool) ([]model.Table, error) {
	return r.find(ctx, "is_occupied = ?", occupied)
}

func (r *tableRepository) FindAvailableBySize(ctx context.Context, size int) ([]model.Table, error) {
	return r.find(ctx, "is_occupied = ? AND table_size = ?", false, size)
}

func (r *tableRepository) SetOccupied(ctx context.Context, id uint, occupied bool) (*model.Table, error) {
	table, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.conn(ctx).Model(table).Update("is_occupied", occupied).Error; err != nil {
		return nil, err
	}
	return table, nil
}
