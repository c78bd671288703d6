package model

import "time"

type Reservation struct {
	Base
	CustomerID      uint              `json:"customer_id" gorm:"not null;index"`
	TableID         uint              `json:"table_id" gorm:"not null;index"`
	ReservationDate time.Time         `json:"reservation_date" gorm:"not null;index"`
	DurationHours   int               `json:"duration_hours" gorm:"not null"`
	NumberOfGuests  int               `json:"number_of_guests" gorm:"not null"`
	Status          ReservationStatus `json:"status" gorm:"type:varchar(20);not null;index;check:status IN ('pending','confirmed','cancelled','completed')"`
	SpecialRequests string            `json:"special_requests,omitempty"`
}
