package service

import (
	"context"
	"time"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

const defaultReservationHours = 2

type CreateReservationInput struct {
	CustomerID      uint                    `json:"customer_id" binding:"required"`
	TableID         uint                    `json:"table_id" binding:"required"`
	ReservationDate time.Time               `json:"reservation_date" binding:"required"`
	DurationHours   *int                    `json:"duration_hours" binding:"omitempty,gt=0,lte=24"`
	NumberOfGuests  int                     `json:"number_of_guests" binding:"required,gt=0"`
	Status          model.ReservationStatus `json:"status"`
	SpecialRequests string                  `json:"special_requests"`
}

type UpdateReservationInput struct {
	TableID         *uint                    `json:"table_id"`
	ReservationDate *time.Time               `json:"reservation_date"`
	DurationHours   *int                     `json:"duration_hours" binding:"omitempty,gt=0,lte=24"`
	NumberOfGuests  *int                     `json:"number_of_guests" binding:"omitempty,gt=0"`
	Status          *model.ReservationStatus `json:"status"`
	SpecialRequests *string                  `json:"special_requests"`
}

type ReservationService struct {
	reservations repository.ReservationRepository
	customers    repository.CustomerRepository
	tables       repository.TableRepository
	log          *logger.Logger
}

func NewReservationService(store *repository.Store, log *logger.Logger) *ReservationService {
	return &ReservationService{
		reservations: store.Reservations,
		customers:    store.Customers,
		tables:       store.Tables,
		log:          log.WithComponent("reservation_service"),
	}
}

func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*model.Reservation, error) {
	status := in.Status
	if status == "" {
		status = model.ReservationPending
	}
	if !status.Valid() {
		return nil, invalid("unknown reservation status %q", status)
	}
	duration := defaultReservationHours
	if in.DurationHours != nil {
		duration = *in.DurationHours
	}
	if duration <= 0 {
		return nil, invalid("duration must be positive")
	}
	if _, err := s.customers.GetByID(ctx, in.CustomerID); err != nil {
		return nil, storeErr(err, "customer", in.CustomerID)
	}
	if err := s.checkGuests(ctx, in.TableID, in.NumberOfGuests); err != nil {
		return nil, err
	}

	reservation := &model.Reservation{
		CustomerID:      in.CustomerID,
		TableID:         in.TableID,
		ReservationDate: in.ReservationDate,
		DurationHours:   duration,
		NumberOfGuests:  in.NumberOfGuests,
		Status:          status,
		SpecialRequests: in.SpecialRequests,
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, storeErr(err, "reservation", 0)
	}
	return reservation, nil
}

// checkGuests loads the table and verifies it seats the party.
func (s *ReservationService) checkGuests(ctx context.Context, tableID uint, guests int) error {
	if guests <= 0 {
		return invalid("number of guests must be positive")
	}
	table, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		return storeErr(err, "table", tableID)
	}
	if guests > table.Size {
		return invalid("table %s seats %d, requested %d guests", table.Number, table.Size, guests)
	}
	return nil
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*model.Reservation, error) {
	reservation, err := s.reservations.GetByID(ctx, id)
	return reservation, storeErr(err, "reservation", id)
}

func (s *ReservationService) List(ctx context.Context, skip, limit int) ([]model.Reservation, error) {
	return s.reservations.List(ctx, skip, limit)
}

func (s *ReservationService) Update(ctx context.Context, id uint, in UpdateReservationInput) (*model.Reservation, error) {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "reservation", id)
	}
	if in.TableID != nil || in.NumberOfGuests != nil {
		tableID, guests := reservation.TableID, reservation.NumberOfGuests
		if in.TableID != nil {
			tableID = *in.TableID
		}
		if in.NumberOfGuests != nil {
			guests = *in.NumberOfGuests
		}
		if err := s.checkGuests(ctx, tableID, guests); err != nil {
			return nil, err
		}
		reservation.TableID, reservation.NumberOfGuests = tableID, guests
	}
	if in.ReservationDate != nil {
		reservation.ReservationDate = *in.ReservationDate
	}
	if in.DurationHours != nil {
		if *in.DurationHours <= 0 {
			return nil, invalid("duration must be positive")
		}
		reservation.DurationHours = *in.DurationHours
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, invalid("unknown reservation status %q", *in.Status)
		}
		reservation.Status = *in.Status
	}
	if in.SpecialRequests != nil {
		reservation.SpecialRequests = *in.SpecialRequests
	}
	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, storeErr(err, "reservation", id)
	}
	return reservation, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.reservations.Delete(ctx, id), "reservation", id)
}

func (s *ReservationService) FindByCustomer(ctx context.Context, customerID uint) ([]model.Reservation, error) {
	return s.reservations.FindByCustomer(ctx, customerID)
}

func (s *ReservationService) FindByTable(ctx context.Context, tableID uint) ([]model.Reservation, error) {
	return s.reservations.FindByTable(ctx, tableID)
}

func (s *ReservationService) FindByStatus(ctx context.Context, status model.ReservationStatus) ([]model.Reservation, error) {
	if !status.Valid() {
		return nil, invalid("unknown reservation status %q", status)
	}
	return s.reservations.FindByStatus(ctx, status)
}

func (s *ReservationService) FindByDay(ctx context.Context, day time.Time) ([]model.Reservation, error) {
	return s.reservations.FindByDay(ctx, day)
}
