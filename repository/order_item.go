package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	CRUD[model.OrderItem]
	FindByOrder(ctx context.Context, orderID uint) ([]model.OrderItem, error)
	FindByOrderAndMenuItem(ctx context.Context, orderID, menuItemID uint) (*model.OrderItem, error)
	CountByMenuItem(ctx context.Context, menuItemID uint) (int64, error)
}

type orderItemRepository struct {
	crud[model.OrderItem]
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{crud[model.OrderItem]{db: db}}
}

func (r *orderItemRepository) FindByOrder(ctx context.Context, orderID uint) ([]model.OrderItem, error) {
	return r.find(ctx, "order_id = ?", orderID)
}

func (r *orderItemRepository) FindByOrderAndMenuItem(ctx context.Context, orderID, menuItemID uint) (*model.OrderItem, error) {
	return r.first(ctx, "order_id = ? AND menu_item_id = ?", orderID, menuItemID)
}

func (r *orderItemRepository) CountByMenuItem(ctx context.Context, menuItemID uint) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&model.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&n).Error
	return n, err
}
