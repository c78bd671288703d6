package model

import "github.com/shopspring/decimal"

type OrderItem struct {
	Base
	OrderID             uint            `json:"order_id" gorm:"not null;uniqueIndex:idx_order_items_order_menu_item"`
	MenuItemID          uint            `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_order_items_order_menu_item"`
	Quantity            int             `json:"quantity" gorm:"not null"`
	UnitPrice           decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Subtotal            decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

func (i *OrderItem) CalculateSubtotal() {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
