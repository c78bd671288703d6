package service

import (
	"context"
	"time"

	"restaurant/events"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"

	"github.com/google/uuid"
)

type CreatePaymentInput struct {
	OrderID       uint                `json:"order_id" binding:"required"`
	Method        model.PaymentMethod `json:"payment_method" binding:"required"`
	TransactionID string              `json:"transaction_id" binding:"max=100"`
}

type PaymentService struct {
	payments  repository.PaymentRepository
	orders    repository.OrderRepository
	tx        repository.Transactor
	publisher events.Publisher
	log       *logger.Logger
}

func NewPaymentService(store *repository.Store, publisher events.Publisher, log *logger.Logger) *PaymentService {
	return &PaymentService{
		payments:  store.Payments,
		orders:    store.Orders,
		tx:        store,
		publisher: publisher,
		log:       log.WithComponent("payment_service"),
	}
}

// Create records a pending payment for the order's final amount.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (*model.Payment, error) {
	if !in.Method.Valid() {
		return nil, invalid("unknown payment method %q", in.Method)
	}
	order, err := s.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, storeErr(err, "order", in.OrderID)
	}

	transactionID := in.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	payment := &model.Payment{
		OrderID:       order.ID,
		PaymentDate:   time.Now(),
		Method:        in.Method,
		AmountPaid:    order.FinalAmount,
		Status:        model.PaymentPending,
		TransactionID: transactionID,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, storeErr(err, "payment", 0)
	}
	s.log.Info("payment created", "payment_id", payment.ID, "order_id", order.ID, "amount", payment.AmountPaid.String())
	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*model.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	return payment, storeErr(err, "payment", id)
}

func (s *PaymentService) List(ctx context.Context, skip, limit int) ([]model.Payment, error) {
	return s.payments.List(ctx, skip, limit)
}

// UpdateStatus sets the payment status. Completing a payment frees the order's table in
// the same transaction; a missing order or table aborts both writes.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uint, status model.PaymentStatus) (*model.Payment, error) {
	if !status.Valid() {
		return nil, invalid("unknown payment status %q", status)
	}

	var (
		payment *model.Payment
		tableID uint
	)
	err := s.tx.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		payment, err = tx.Payments.GetByID(ctx, id)
		if err != nil {
			return storeErr(err, "payment", id)
		}
		payment.Status = status
		if err := tx.Payments.Update(ctx, payment); err != nil {
			return storeErr(err, "payment", id)
		}
		if status != model.PaymentCompleted {
			return nil
		}

		order, err := tx.Orders.GetByID(ctx, payment.OrderID)
		if err != nil {
			return storeErr(err, "order", payment.OrderID)
		}
		if _, err := tx.Tables.SetOccupied(ctx, order.TableID, false); err != nil {
			return storeErr(err, "table", order.TableID)
		}
		tableID = order.TableID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == model.PaymentCompleted {
		s.log.Info("payment completed, table released", "payment_id", id, "table_id", tableID)
		publish(ctx, s.publisher, s.log, events.New(events.PaymentCompleted, id, map[string]any{
			"order_id": payment.OrderID,
			"table_id": tableID,
			"amount":   payment.AmountPaid.String(),
		}))
	}
	return payment, nil
}

func (s *PaymentService) UpdateMethod(ctx context.Context, id uint, method model.PaymentMethod) (*model.Payment, error) {
	if !method.Valid() {
		return nil, invalid("unknown payment method %q", method)
	}
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "payment", id)
	}
	payment.Method = method
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, storeErr(err, "payment", id)
	}
	return payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.payments.Delete(ctx, id), "payment", id)
}

func (s *PaymentService) FindByOrder(ctx context.Context, orderID uint) ([]model.Payment, error) {
	return s.payments.FindByOrder(ctx, orderID)
}

func (s *PaymentService) FindByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	if !status.Valid() {
		return nil, invalid("unknown payment status %q", status)
	}
	return s.payments.FindByStatus(ctx, status)
}

func (s *PaymentService) FindByTransactionID(ctx context.Context, transactionID string) ([]model.Payment, error) {
	return s.payments.FindByTransactionID(ctx, transactionID)
}
