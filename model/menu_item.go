package model

import "github.com/shopspring/decimal"

type MenuItem struct {
	Base
	Name        string          `json:"item_name" gorm:"column:item_name;size:100;not null"`
	Type        ItemType        `json:"item_type" gorm:"column:item_type;type:varchar(20);not null;index;check:item_type IN ('food','drink','appetizer','dessert')"`
	Price       decimal.Decimal `json:"item_price" gorm:"column:item_price;type:decimal(10,2);not null"`
	Description string          `json:"item_description,omitempty" gorm:"column:item_description"`
	Image       string          `json:"item_image,omitempty" gorm:"column:item_image;size:255"`
	IsAvailable bool            `json:"is_available" gorm:"not null;index"`

	OrderItems []OrderItem `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}
