package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuItemRepository interface {
	CRUD[model.MenuItem]
	FindByType(ctx context.Context, itemType model.ItemType) ([]model.MenuItem, error)
	FindAvailable(ctx context.Context) ([]model.MenuItem, error)
	CreateBatch(ctx context.Context, items []model.MenuItem) error
}

type menuItemRepository struct {
	crud[model.MenuItem]
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{crud[model.MenuItem]{db: db}}
}

func (r *menuItemRepository) FindByType(ctx context.Context, itemType model.ItemType) ([]model.MenuItem, error) {
	return r.find(ctx, "item_type = ?", itemType)
}

func (r *menuItemRepository) FindAvailable(ctx context.Context) ([]model.MenuItem, error) {
	return r.find(ctx, "is_available = ?", true)
}

func (r *menuItemRepository) CreateBatch(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return translate(r.conn(ctx).Omit(clause.Associations).Create(&items).Error)
}
