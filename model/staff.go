package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Staff struct {
	Base
	Username     string          `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"`
	FullName     string          `json:"full_name" gorm:"size:100;not null"`
	Email        string          `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Phone        string          `json:"phone,omitempty" gorm:"size:20"`
	Role         StaffRole       `json:"role" gorm:"type:varchar(20);not null;index;check:role IN ('waiter','chef','cashier','admin')"`
	Salary       decimal.Decimal `json:"salary" gorm:"type:decimal(10,2);not null"`
	HireDate     time.Time       `json:"hire_date"`

	Orders    []Order         `json:"-" gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL"`
	Schedules []StaffSchedule `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (Staff) TableName() string {
	return "staff"
}
