package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	Base
	OrderID       uint            `json:"order_id" gorm:"not null;index"`
	PaymentDate   time.Time       `json:"payment_date"`
	Method        PaymentMethod   `json:"payment_method" gorm:"column:payment_method;type:varchar(20);not null;check:payment_method IN ('cash','card','digital_wallet','bank_transfer')"`
	AmountPaid    decimal.Decimal `json:"amount_paid" gorm:"type:decimal(10,2);not null"`
	Status        PaymentStatus   `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;index;check:payment_status IN ('pending','completed','failed','refunded')"`
	TransactionID string          `json:"transaction_id" gorm:"size:100;index"`
}
