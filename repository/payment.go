package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	CRUD[model.Payment]
	FindByOrder(ctx context.Context, orderID uint) ([]model.Payment, error)
	FindByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) ([]model.Payment, error)
}

type paymentRepository struct {
	crud[model.Payment]
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{crud[model.Payment]{db: db}}
}

func (r *paymentRepository) FindByOrder(ctx context.Context, orderID uint) ([]model.Payment, error) {
	return r.find(ctx, "order_id = ?", orderID)
}

func (r *paymentRepository) FindByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	return r.find(ctx, "payment_status = ?", status)
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) ([]model.Payment, error) {
	return r.find(ctx, "transaction_id = ?", transactionID)
}
