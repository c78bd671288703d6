package model

type Customer struct {
	Base
	Username     string       `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"`
	FullName     string       `json:"full_name" gorm:"size:100;not null"`
	Email        string       `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Phone        string       `json:"phone,omitempty" gorm:"size:20"`
	Role         CustomerRole `json:"role" gorm:"type:varchar(20);not null;index;check:role IN ('regular','vip')"`

	Orders       []Order       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reservations []Reservation `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reviews      []Review      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	VipRequests  []VipRequest  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
