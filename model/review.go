package model

import "time"

type Review struct {
	Base
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	OrderID    uint      `json:"order_id" gorm:"not null;index"`
	Rating     int       `json:"rating" gorm:"not null;index;check:rating BETWEEN 1 AND 5"`
	Comment    string    `json:"comment,omitempty"`
	ReviewDate time.Time `json:"review_date"`
}
