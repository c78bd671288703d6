package controller

import (
	"restaurant/logger"
	"restaurant/model"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *service.OrderService
	items  *service.OrderItemService
	log    *logger.Logger
}

func NewOrderController(orders *service.OrderService, items *service.OrderItemService, log *logger.Logger) *OrderController {
	return &OrderController{orders: orders, items: items, log: log.WithComponent("order_controller")}
}

func (ctl *OrderController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	orders, err := ctl.orders.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched orders successfully", orders)
}

// Get returns the order together with its lines.
func (ctl *OrderController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	order, err := ctl.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched order successfully", order)
}

func (ctl *OrderController) Create(c *gin.Context) {
	var req service.CreateOrderInput
	if !bindJSON(c, &req) {
		return
	}
	order, err := ctl.orders.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Order created successfully", order)
}

func (ctl *OrderController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateOrderInput
	if !bindJSON(c, &req) {
		return
	}
	order, err := ctl.orders.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Order updated successfully", order)
}

func (ctl *OrderController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *OrderController) ListByCustomer(c *gin.Context) {
	id, valid := pathID(c, "customer_id")
	if !valid {
		return
	}
	orders, err := ctl.orders.FindByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched orders successfully", orders)
}

func (ctl *OrderController) ListByTable(c *gin.Context) {
	id, valid := pathID(c, "table_id")
	if !valid {
		return
	}
	orders, err := ctl.orders.FindByTable(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched orders successfully", orders)
}

func (ctl *OrderController) ListByStatus(c *gin.Context) {
	orders, err := ctl.orders.FindByStatus(c.Request.Context(), model.OrderStatus(c.Param("status")))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched orders successfully", orders)
}

func (ctl *OrderController) ListItems(c *gin.Context) {
	id, valid := pathID(c, "id")
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
