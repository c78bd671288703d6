package controller

import (
	"restaurant/logger"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	items *service.OrderItemService
	log   *logger.Logger
}

func NewOrderItemController(items *service.OrderItemService, log *logger.Logger) *OrderItemController {
	return &OrderItemController{items: items, log: log.WithComponent("order_item_controller")}
}

func (ctl *OrderItemController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	items, err := ctl.items.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched order items successfully", items)
}

func (ctl *OrderItemController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	item, err := ctl.items.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched order item successfully", item)
}

// Create adds a menu item to an order, merging with an existing line for the same item.
func (ctl *OrderItemController) Create(c *gin.Context) {
	var req service.AddOrderItemInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.items.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Order item added successfully", item)
}

func (ctl *OrderItemController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateOrderItemInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.items.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Order item updated successfully", item)
}

func (ctl *OrderItemController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.items.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *OrderItemController) ListByOrder(c *gin.Context) {
	id, valid := pathID(c, "order_id")
	if !valid {
		return
	}
	items, err := ctl.items.FindByOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched order items successfully", items)
}
