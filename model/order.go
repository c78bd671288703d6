package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Base
	CustomerID     uint            `json:"customer_id" gorm:"not null;index"`
	TableID        uint            `json:"table_id" gorm:"not null;index"`
	StaffID        *uint           `json:"staff_id" gorm:"index"`
	OrderDate      time.Time       `json:"order_date"`
	Status         OrderStatus     `json:"status" gorm:"type:varchar(20);not null;index;check:status IN ('pending','preparing','ready','served','paid','cancelled')"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2);not null"`
	FinalAmount    decimal.Decimal `json:"final_amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod  *PaymentMethod  `json:"payment_method" gorm:"type:varchar(20)"`
	Notes          string          `json:"notes,omitempty"`

	Items    []OrderItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Payments []Payment   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reviews  []Review    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// ApplyTotal sets the item total and derives the final amount from the current discount.
func (o *Order) ApplyTotal(total decimal.Decimal) {
	o.TotalAmount = total
	o.FinalAmount = total.Sub(o.DiscountAmount)
}
