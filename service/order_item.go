package service

import (
	"context"
	"errors"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

type AddOrderItemInput struct {
	OrderID             uint   `json:"order_id" binding:"required"`
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,gt=0"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateOrderItemInput struct {
	Quantity            *int    `json:"quantity" binding:"omitempty,gt=0"`
	SpecialInstructions *string `json:"special_instructions"`
}

// OrderItemService mutates order lines. Every mutation locks the parent order and
// recalculates its amounts in the same transaction.
type OrderItemService struct {
	items repository.OrderItemRepository
	tx    repository.Transactor
	log   *logger.Logger
}

func NewOrderItemService(store *repository.Store, log *logger.Logger) *OrderItemService {
	return &OrderItemService{items: store.OrderItems, tx: store, log: log.WithComponent("order_item_service")}
}

// Add inserts a line or, when the order already has the menu item, increases its
// quantity and reprices it at the current menu price.
func (s *OrderItemService) Add(ctx context.Context, in AddOrderItemInput) (*model.OrderItem, error) {
	if in.Quantity <= 0 {
		return nil, invalid("quantity must be greater than zero")
	}

	var line *model.OrderItem
	err := s.tx.Transaction(ctx, func(tx *repository.Store) error {
		order, err := lockOpenOrder(ctx, tx, in.OrderID)
		if err != nil {
			return err
		}
		menuItem, err := tx.MenuItems.GetByID(ctx, in.MenuItemID)
		if err != nil {
			return storeErr(err, "menu item", in.MenuItemID)
		}
		if !menuItem.IsAvailable {
			return invalid("menu item %d is not available", menuItem.ID)
		}

		line, err = tx.OrderItems.FindByOrderAndMenuItem(ctx, order.ID, menuItem.ID)
		switch {
		case err == nil:
			line.Quantity += in.Quantity
			line.UnitPrice = menuItem.Price
			if in.SpecialInstructions != "" {
				line.SpecialInstructions = in.SpecialInstructions
			}
			line.CalculateSubtotal()
			err = tx.OrderItems.Update(ctx, line)
		case errors.Is(err, repository.ErrNotFound):
			line = &model.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          menuItem.ID,
				Quantity:            in.Quantity,
				UnitPrice:           menuItem.Price,
				SpecialInstructions: in.SpecialInstructions,
			}
			line.CalculateSubtotal()
			err = tx.OrderItems.Create(ctx, line)
		}
		if err != nil {
			return storeErr(err, "order item", 0)
		}
		return recalculateOrder(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("order item added", "order_id", in.OrderID, "menu_item_id", in.MenuItemID, "quantity", line.Quantity)
	return line, nil
}

func (s *OrderItemService) Get(ctx context.Context, id uint) (*model.OrderItem, error) {
	line, err := s.items.GetByID(ctx, id)
	return line, storeErr(err, "order item", id)
}

func (s *OrderItemService) List(ctx context.Context, skip, limit int) ([]model.OrderItem, error) {
	return s.items.List(ctx, skip, limit)
}

func (s *OrderItemService) FindByOrder(ctx context.Context, orderID uint) ([]model.OrderItem, error) {
	return s.items.FindByOrder(ctx, orderID)
}

// Update changes quantity or instructions; the unit price captured at ordering time is kept.
func (s *OrderItemService) Update(ctx context.Context, id uint, in UpdateOrderItemInput) (*model.OrderItem, error) {
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, invalid("quantity must be greater than zero")
	}

	var line *model.OrderItem
	err := s.tx.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		line, err = tx.OrderItems.GetByID(ctx, id)
		if err != nil {
			return storeErr(err, "order item", id)
		}
		order, err := lockOpenOrder(ctx, tx, line.OrderID)
		if err != nil {
			return err
		}
		if in.Quantity != nil {
			line.Quantity = *in.Quantity
		}
		if in.SpecialInstructions != nil {
			line.SpecialInstructions = *in.SpecialInstructions
		}
		line.CalculateSubtotal()
		if err := tx.OrderItems.Update(ctx, line); err != nil {
			return storeErr(err, "order item", id)
		}
		return recalculateOrder(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id uint) error {
	return s.tx.Transaction(ctx, func(tx *repository.Store) error {
		line, err := tx.OrderItems.GetByID(ctx, id)
		if err != nil {
			return storeErr(err, "order item", id)
		}
		order, err := lockOpenOrder(ctx, tx, line.OrderID)
		if err != nil {
			return err
		}
		if err := tx.OrderItems.Delete(ctx, id); err != nil {
			return storeErr(err, "order item", id)
		}
		return recalculateOrder(ctx, tx, order)
	})
}

// lockOpenOrder locks the order row and rejects orders that are already settled.
func lockOpenOrder(ctx context.Context, tx *repository.Store, orderID uint) (*model.Order, error) {
	order, err := tx.Orders.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, "order", orderID)
	}
	if order.Status == model.OrderPaid || order.Status == model.OrderCancelled {
		return nil, invalid("order %d is %s and can no longer change", order.ID, order.Status)
	}
	return order, nil
}
