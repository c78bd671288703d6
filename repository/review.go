package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	CRUD[model.Review]
	FindByCustomer(ctx context.Context, customerID uint) ([]model.Review, error)
	FindByOrder(ctx context.Context, orderID uint) ([]model.Review, error)
	FindByRating(ctx context.Context, rating int) ([]model.Review, error)
}

type reviewRepository struct {
	crud[model.Review]
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{crud[model.Review]{db: db}}
}

func (r *reviewRepository) FindByCustomer(ctx context.Context, customerID uint) ([]model.Review, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *reviewRepository) FindByOrder(ctx context.Context, orderID uint) ([]model.Review, error) {
	return r.find(ctx, "order_id = ?", orderID)
}

func (r *reviewRepository) FindByRating(ctx context.Context, rating int) ([]model.Review, error) {
	return r.find(ctx, "rating = ?", rating)
}
