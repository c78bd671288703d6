package service

import (
	"context"
	"time"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

type CreateReviewInput struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	OrderID    uint   `json:"order_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type ReviewService struct {
	reviews   repository.ReviewRepository
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	log       *logger.Logger
}

func NewReviewService(store *repository.Store, log *logger.Logger) *ReviewService {
	return &ReviewService{
		reviews:   store.Reviews,
		customers: store.Customers,
		orders:    store.Orders,
		log:       log.WithComponent("review_service"),
	}
}

func validRating(rating int) error {
	if rating < 1 || rating > 5 {
		return invalid("rating must be between 1 and 5")
	}
	return nil
}

// Create stores a review; the order must belong to the reviewing customer.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*model.Review, error) {
	if err := validRating(in.Rating); err != nil {
		return nil, err
	}
	if _, err := s.customers.GetByID(ctx, in.CustomerID); err != nil {
		return nil, storeErr(err, "customer", in.CustomerID)
	}
	order, err := s.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, storeErr(err, "order", in.OrderID)
	}
	if order.CustomerID != in.CustomerID {
		return nil, invalid("order %d does not belong to customer %d", order.ID, in.CustomerID)
	}

	review := &model.Review{
		CustomerID: in.CustomerID,
		OrderID:    in.OrderID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		ReviewDate: time.Now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, storeErr(err, "review", 0)
	}
	return review, nil
}

func (s *ReviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	return review, storeErr(err, "review", id)
}

func (s *ReviewService) List(ctx context.Context, skip, limit int) ([]model.Review, error) {
	return s.reviews.List(ctx, skip, limit)
}

func (s *ReviewService) Update(ctx context.Context, id uint, in UpdateReviewInput) (*model.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "review", id)
	}
	if in.Rating != nil {
		if err := validRating(*in.Rating); err != nil {
			return nil, err
		}
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, storeErr(err, "review", id)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.reviews.Delete(ctx, id), "review", id)
}

func (s *ReviewService) FindByCustomer(ctx context.Context, customerID uint) ([]model.Review, error) {
	return s.reviews.FindByCustomer(ctx, customerID)
}

func (s *ReviewService) FindByOrder(ctx context.Context, orderID uint) ([]model.Review, error) {
	return s.reviews.FindByOrder(ctx, orderID)
}

func (s *ReviewService) FindByRating(ctx context.Context, rating int) ([]model.Review, error) {
	if err := validRating(rating); err != nil {
		return nil, err
	}
	return s.reviews.FindByRating(ctx, rating)
}
