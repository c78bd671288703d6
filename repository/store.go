package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs fn inside one database transaction; fn receives repositories bound to it.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *Store) error) error
}

type Store struct {
	db *gorm.DB

	Customers      CustomerRepository
	Staff          StaffRepository
	Tables         TableRepository
	MenuItems      MenuItemRepository
	Orders         OrderRepository
	OrderItems     OrderItemRepository
	Payments       PaymentRepository
	Reservations   ReservationRepository
	Reviews        ReviewRepository
	StaffSchedules StaffScheduleRepository
	VipRequests    VipRequestRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:             db,
		Customers:      NewCustomerRepository(db),
		Staff:          NewStaffRepository(db),
		Tables:         NewTableRepository(db),
		MenuItems:      NewMenuItemRepository(db),
		Orders:         NewOrderRepository(db),
		OrderItems:     NewOrderItemRepository(db),
		Payments:       NewPaymentRepository(db),
		Reservations:   NewReservationRepository(db),
		Reviews:        NewReviewRepository(db),
		StaffSchedules: NewStaffScheduleRepository(db),
		VipRequests:    NewVipRequestRepository(db),
	}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
