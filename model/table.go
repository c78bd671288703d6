package model

type Table struct {
	Base
	Number     string `json:"table_number" gorm:"column:table_number;size:10;uniqueIndex;not null"`
	Size       int    `json:"table_size" gorm:"column:table_size;not null;index"`
	IsOccupied bool   `json:"is_occupied" gorm:"not null;index"`

	Orders       []Order       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reservations []Reservation `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
