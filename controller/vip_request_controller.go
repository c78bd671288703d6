package controller

import (
	"restaurant/logger"
	"restaurant/model"
	"restaurant/service"
	"restaurant/utils"

	"github.com/gin-gonic/gin"
)

type VipRequestController struct {
	requests *service.VipRequestService
	log      *logger.Logger
}

func NewVipRequestController(requests *service.VipRequestService, log *logger.Logger) *VipRequestController {
	return &VipRequestController{requests: requests, log: log.WithComponent("vip_request_controller")}
}

// List accepts an optional status query parameter.
func (ctl *VipRequestController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	status := model.VipRequestStatus(c.Query("status"))
	requests, err := ctl.requests.List(c.Request.Context(), status, page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched vip requests successfully", requests)
}

func (ctl *VipRequestController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	request, err := ctl.requests.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched vip request successfully", request)
}

// Create files a request. Customers may only apply for themselves.
func (ctl *VipRequestController) Create(c *gin.Context) {
	var req service.CreateVipRequestInput
	if !bindJSON(c, &req) {
		return
	}
	if claims, found := utils.ClaimsFromContext(c); found && !claims.IsStaff() && claims.UserID != req.CustomerID {
		respondError(c, ctl.log, service.ErrForbidden)
		return
	}

	request, err := ctl.requests.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Vip request submitted", request)
}

func (ctl *VipRequestController) Approve(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	request, err := ctl.requests.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Vip request approved", request)
}

func (ctl *VipRequestController) Reject(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	request, err := ctl.requests.Reject(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Vip request rejected", request)
}

func (ctl *VipRequestController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.requests.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *VipRequestController) ListByCustomer(c *gin.Context) {
	id, valid := pathID(c, "customer_id")
	if !valid {
		return
	}
	requests, err := ctl.requests.FindByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched vip requests successfully", requests)
}
