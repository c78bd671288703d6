package repository

import (
	"context"

	"restaurant/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	CRUD[model.Order]
	// GetForUpdate loads the order and locks its row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uint) (*model.Order, error)
	GetWithItems(ctx context.Context, id uint) (*model.Order, error)
	FindByCustomer(ctx context.Context, customerID uint) ([]model.Order, error)
	FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	FindByTable(ctx context.Context, tableID uint) ([]model.Order, error)
	SumItemSubtotals(ctx context.Context, orderID uint) (decimal.Decimal, error)
}

type orderRepository struct {
	crud[model.Order]
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{crud[model.Order]{db: db}}
}

func (r *orderRepository) GetForUpdate(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.conn(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context, customerID uint) ([]model.Order, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *orderRepository) FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *orderRepository) FindByTable(ctx context.Context, tableID uint) ([]model.Order, error) {
	return r.find(ctx, "table_id = ?", tableID)
}

func (r *orderRepository) SumItemSubtotals(ctx context.Context, orderID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.conn(ctx).Model(&model.OrderItem{}).
		Select("COALESCE(SUM(subtotal), 0)").
		Where("order_id = ?", orderID).
		Row().Scan(&total)
	return total, err
}
