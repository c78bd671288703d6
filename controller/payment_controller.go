package controller

import (
	"restaurant/logger"
	"restaurant/model"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	payments *service.PaymentService
	log      *logger.Logger
}

func NewPaymentController(payments *service.PaymentService, log *logger.Logger) *PaymentController {
	return &PaymentController{payments: payments, log: log.WithComponent("payment_controller")}
}

func (ctl *PaymentController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	payments, err := ctl.payments.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched payments successfully", payments)
}

func (ctl *PaymentController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	payment, err := ctl.payments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched payment successfully", payment)
}

func (ctl *PaymentController) Create(c *gin.Context) {
	var req service.CreatePaymentInput
	if !bindJSON(c, &req) {
		return
	}
	payment, err := ctl.payments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Payment created successfully", payment)
}

// UpdateStatus moves a payment to a new status. Completing it frees the order's table.
func (ctl *PaymentController) UpdateStatus(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req struct {
		Status model.PaymentStatus `json:"payment_status" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	payment, err := ctl.payments.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Payment status updated", payment)
}

func (ctl *PaymentController) UpdateMethod(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req struct {
		Method model.PaymentMethod `json:"payment_method" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	payment, err := ctl.payments.UpdateMethod(c.Request.Context(), id, req.Method)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Payment method updated", payment)
}

func (ctl *PaymentController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.payments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *PaymentController) ListByOrder(c *gin.Context) {
	id, valid := pathID(c, "order_id")
	if !valid {
		return
	}
	payments, err := ctl.payments.FindByOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched payments successfully", payments)
}

func (ctl *PaymentController) ListByStatus(c *gin.Context) {
	payments, err := ctl.payments.FindByStatus(c.Request.Context(), model.PaymentStatus(c.Param("status")))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched payments successfully", payments)
}

func (ctl *PaymentController) ListByTransaction(c *gin.Context) {
	payments, err := ctl.payments.FindByTransactionID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched payments successfully", payments)
}
