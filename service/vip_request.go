package service

import (
	"context"
	"errors"

	"restaurant/events"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

type CreateVipRequestInput struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Reason     string `json:"reason" binding:"max=255"`
}

type VipRequestService struct {
	requests  repository.VipRequestRepository
	tx        repository.Transactor
	publisher events.Publisher
	log       *logger.Logger
}

func NewVipRequestService(store *repository.Store, publisher events.Publisher, log *logger.Logger) *VipRequestService {
	return &VipRequestService{
		requests:  store.VipRequests,
		tx:        store,
		publisher: publisher,
		log:       log.WithComponent("vip_request_service"),
	}
}

// Create files a pending request. A customer may hold only one pending request and
// customers who are already VIP cannot apply.
func (s *VipRequestService) Create(ctx context.Context, in CreateVipRequestInput) (*model.VipRequest, error) {
	var request *model.VipRequest
	err := s.tx.Transaction(ctx, func(tx *repository.Store) error {
		customer, err := tx.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return storeErr(err, "customer", in.CustomerID)
		}
		if customer.Role == model.CustomerVIP {
			return conflict("customer %d is already vip", customer.ID)
		}

		_, err = tx.VipRequests.FindByCustomerAndStatus(ctx, customer.ID, model.VipPending)
		switch {
		case err == nil:
			return conflict("customer %d already has a pending vip request", customer.ID)
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		request = &model.VipRequest{CustomerID: customer.ID, Status: model.VipPending, Reason: in.Reason}
		return storeErr(tx.VipRequests.Create(ctx, request), "vip request", 0)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *VipRequestService) Approve(ctx context.Context, id uint) (*model.VipRequest, error) {
	return s.decide(ctx, id, model.VipApproved)
}

func (s *VipRequestService) Reject(ctx context.Context, id uint) (*model.VipRequest, error) {
	return s.decide(ctx, id, model.VipRejected)
}

// decide moves a pending request to status; approval promotes the customer in the same transaction.
func (s *VipRequestService) decide(ctx context.Context, id uint, status model.VipRequestStatus) (*model.VipRequest, error) {
	var request *model.VipRequest
	err := s.tx.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		request, err = tx.VipRequests.GetByID(ctx, id)
		if err != nil {
			return storeErr(err, "vip request", id)
		}
		if request.Status != model.VipPending {
			return conflict("vip request %d is already %s", id, request.Status)
		}
		request.Status = status
		if err := tx.VipRequests.Update(ctx, request); err != nil {
			return storeErr(err, "vip request", id)
		}
		if status == model.VipApproved {
			return storeErr(tx.Customers.UpdateRole(ctx, request.CustomerID, model.CustomerVIP), "customer", request.CustomerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("vip request decided", "request_id", id, "customer_id", request.CustomerID, "status", status)
	publish(ctx, s.publisher, s.log, events.New(events.VipRequestDecided, id, map[string]any{
		"customer_id": request.CustomerID,
		"status":      status,
	}))
	return request, nil
}

func (s *VipRequestService) Get(ctx context.Context, id uint) (*model.VipRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	return request, storeErr(err, "vip request", id)
}

// List pages through all requests, or returns those in status when it is set.
func (s *VipRequestService) List(ctx context.Context, status model.VipRequestStatus, skip, limit int) ([]model.VipRequest, error) {
	if status == "" {
		return s.requests.List(ctx, skip, limit)
	}
	if !status.Valid() {
		return nil, invalid("unknown vip request status %q", status)
	}
	return s.requests.FindByStatus(ctx, status)
}

func (s *VipRequestService) FindByCustomer(ctx context.Context, customerID uint) ([]model.VipRequest, error) {
	return s.requests.FindByCustomer(ctx, customerID)
}

func (s *VipRequestService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.requests.Delete(ctx, id), "vip request", id)
}
