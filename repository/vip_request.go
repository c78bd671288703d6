package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type VipRequestRepository interface {
	CRUD[model.VipRequest]
	FindByCustomer(ctx context.Context, customerID uint) ([]model.VipRequest, error)
	FindByCustomerAndStatus(ctx context.Context, customerID uint, status model.VipRequestStatus) (*model.VipRequest, error)
	FindByStatus(ctx context.Context, status model.VipRequestStatus) ([]model.VipRequest, error)
}

type vipRequestRepository struct {
	crud[model.VipRequest]
}

func NewVipRequestRepository(db *gorm.DB) VipRequestRepository {
	return &vipRequestRepository{crud[model.VipRequest]{db: db}}
}

func (r *vipRequestRepository) FindByCustomer(ctx context.Context, customerID uint) ([]model.VipRequest, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *vipRequestRepository) FindByCustomerAndStatus(ctx context.Context, customerID uint, status model.VipRequestStatus) (*model.VipRequest, error) {
	return r.first(ctx, "customer_id = ? AND status = ?", customerID, status)
}

func (r *vipRequestRepository) FindByStatus(ctx context.Context, status model.VipRequestStatus) ([]model.VipRequest, error) {
	return r.find(ctx, "status = ?", status)
}
