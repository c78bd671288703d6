package service

import (
	"context"
	"time"

	"restaurant/events"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"

	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	CustomerID    uint                 `json:"customer_id" binding:"required"`
	TableID       uint                 `json:"table_id" binding:"required"`
	StaffID       *uint                `json:"staff_id"`
	PaymentMethod *model.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
}

type UpdateOrderInput struct {
	StaffID        *uint                `json:"staff_id"`
	Status         *model.OrderStatus   `json:"status"`
	PaymentMethod  *model.PaymentMethod `json:"payment_method"`
	DiscountAmount *decimal.Decimal     `json:"discount_amount"`
	Notes          *string              `json:"notes"`
}

type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	tables    repository.TableRepository
	staff     repository.StaffRepository
	tx        repository.Transactor
	publisher events.Publisher
	log       *logger.Logger
}

func NewOrderService(store *repository.Store, publisher events.Publisher, log *logger.Logger) *OrderService {
	return &OrderService{
		orders:    store.Orders,
		customers: store.Customers,
		tables:    store.Tables,
		staff:     store.Staff,
		tx:        store,
		publisher: publisher,
		log:       log.WithComponent("order_service"),
	}
}

// Create opens a pending order with zero amounts.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if _, err := s.customers.GetByID(ctx, in.CustomerID); err != nil {
		return nil, storeErr(err, "customer", in.CustomerID)
	}
	if _, err := s.tables.GetByID(ctx, in.TableID); err != nil {
		return nil, storeErr(err, "table", in.TableID)
	}
	if in.StaffID != nil {
		if _, err := s.staff.GetByID(ctx, *in.StaffID); err != nil {
			return nil, storeErr(err, "staff", *in.StaffID)
		}
	}
	if in.PaymentMethod != nil && !in.PaymentMethod.Valid() {
		return nil, invalid("unknown payment method %q", *in.PaymentMethod)
	}

	order := &model.Order{
		CustomerID:     in.CustomerID,
		TableID:        in.TableID,
		StaffID:        in.StaffID,
		OrderDate:      time.Now(),
		Status:         model.OrderPending,
		TotalAmount:    decimal.Zero,
		DiscountAmount: decimal.Zero,
		FinalAmount:    decimal.Zero,
		PaymentMethod:  in.PaymentMethod,
		Notes:          in.Notes,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, storeErr(err, "order", 0)
	}
	s.log.Info("order created", "order_id", order.ID, "customer_id", order.CustomerID, "table_id", order.TableID)
	return order, nil
}

// Get returns the order with its items.
func (s *OrderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orders.GetWithItems(ctx, id)
	return order, storeErr(err, "order", id)
}

func (s *OrderService) List(ctx context.Context, skip, limit int) ([]model.Order, error) {
	return s.orders.List(ctx, skip, limit)
}

func (s *OrderService) Update(ctx context.Context, id uint, in UpdateOrderInput) (*model.Order, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, invalid("unknown order status %q", *in.Status)
	}
	if in.PaymentMethod != nil && !in.PaymentMethod.Valid() {
		return nil, invalid("unknown payment method %q", *in.PaymentMethod)
	}
	if in.DiscountAmount != nil && in.DiscountAmount.IsNegative() {
		return nil, invalid("discount must not be negative")
	}

	var (
		order         *model.Order
		statusChanged bool
	)
	err := s.tx.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		order, err = tx.Orders.GetForUpdate(ctx, id)
		if err != nil {
			return storeErr(err, "order", id)
		}
		if in.StaffID != nil {
			if _, err := tx.Staff.GetByID(ctx, *in.StaffID); err != nil {
				return storeErr(err, "staff", *in.StaffID)
			}
			order.StaffID = in.StaffID
		}
		if in.Status != nil && *in.Status != order.Status {
			order.Status = *in.Status
			statusChanged = true
		}
		if in.PaymentMethod != nil {
			order.PaymentMethod = in.PaymentMethod
		}
		if in.Notes != nil {
			order.Notes = *in.Notes
		}
		if in.DiscountAmount != nil {
			if in.DiscountAmount.GreaterThan(order.TotalAmount) {
				return invalid("discount %s exceeds order total %s", in.DiscountAmount, order.TotalAmount)
			}
			order.DiscountAmount = in.DiscountAmount.Round(2)
			order.ApplyTotal(order.TotalAmount)
		}
		return storeErr(tx.Orders.Update(ctx, order), "order", id)
	})
	if err != nil {
		return nil, err
	}

	if statusChanged {
		s.log.Info("order status changed", "order_id", id, "status", order.Status)
		publish(ctx, s.publisher, s.log, events.New(events.OrderStatusChanged, id, map[string]any{
			"status":   order.Status,
			"table_id": order.TableID,
		}))
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.orders.Delete(ctx, id), "order", id)
}

func (s *OrderService) FindByCustomer(ctx context.Context, customerID uint) ([]model.Order, error) {
	return s.orders.FindByCustomer(ctx, customerID)
}

func (s *OrderService) FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if !status.Valid() {
		return nil, invalid("unknown order status %q", status)
	}
	return s.orders.FindByStatus(ctx, status)
}

func (s *OrderService) FindByTable(ctx context.Context, tableID uint) ([]model.Order, error) {
	return s.orders.FindByTable(ctx, tableID)
}

// recalculateOrder sets total to the sum of item subtotals and derives the final amount.
// A discount larger than the new total is reduced to the total.
func recalculateOrder(ctx context.Context, tx *repository.Store, order *model.Order) error {
	total, err := tx.Orders.SumItemSubtotals(ctx, order.ID)
	if err != nil {
		return err
	}
	// sqlite sums decimal columns as REAL.
	total = total.Round(2)
	if order.DiscountAmount.GreaterThan(total) {
		order.DiscountAmount = total
	}
	order.ApplyTotal(total)
	return tx.Orders.Update(ctx, order)
}
