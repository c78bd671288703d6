package model

import "time"

// Base replaces gorm.Model: rows are hard-deleted, so there is no DeletedAt.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
