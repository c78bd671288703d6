package repository

import (
	"context"
	"time"

	"restaurant/model"

	"gorm.io/gorm"
)

type ReservationRepository interface {
	CRUD[model.Reservation]
	FindByCustomer(ctx context.Context, customerID uint) ([]model.Reservation, error)
	FindByTable(ctx context.Context, tableID uint) ([]model.Reservation, error)
	FindByStatus(ctx context.Context, status model.ReservationStatus) ([]model.Reservation, error)
	// FindByDay returns reservations starting within the calendar day of day.
	FindByDay(ctx context.Context, day time.Time) ([]model.Reservation, error)
}

type reservationRepository struct {
	crud[model.Reservation]
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{crud[model.Reservation]{db: db}}
}

func (r *reservationRepository) FindByCustomer(ctx context.Context, customerID uint) ([]model.Reservation, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *reservationRepository) FindByTable(ctx context.Context, tableID uint) ([]model.Reservation, error) {
	return r.find(ctx, "table_id = ?", tableID)
}

func (r *reservationRepository) FindByStatus(ctx context.Context, status model.ReservationStatus) ([]model.Reservation, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *reservationRepository) FindByDay(ctx context.Context, day time.Time) ([]model.Reservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.find(ctx, "reservation_date >= ? AND reservation_date < ?", start, start.AddDate(0, 0, 1))
}
