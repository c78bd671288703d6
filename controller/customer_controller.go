package controller

import (
	"restaurant/logger"
	"restaurant/service"
	"restaurant/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customers *service.CustomerService
	log       *logger.Logger
}

func NewCustomerController(customers *service.CustomerService, log *logger.Logger) *CustomerController {
	return &CustomerController{customers: customers, log: log.WithComponent("customer_controller")}
}

func (ctl *CustomerController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	customers, err := ctl.customers.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched customers successfully", customers)
}

func (ctl *CustomerController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	customer, err := ctl.customers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched customer successfully", customer)
}

func (ctl *CustomerController) Create(c *gin.Context) {
	var req service.CreateCustomerInput
	if !bindJSON(c, &req) {
		return
	}
	customer, err := ctl.customers.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Customer registered successfully", customer)
}

// Update applies a partial patch. Only staff may change a customer's role.
func (ctl *CustomerController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateCustomerInput
	if !bindJSON(c, &req) {
		return
	}
	if claims, found := utils.ClaimsFromContext(c); req.Role != nil && (!found || !claims.IsStaff()) {
		respondError(c, ctl.log, service.ErrForbidden)
		return
	}

	customer, err := ctl.customers.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Customer updated successfully", customer)
}

func (ctl *CustomerController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.customers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *CustomerController) GetByUsername(c *gin.Context) {
	customer, err := ctl.customers.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched customer successfully", customer)
}

func (ctl *CustomerController) GetByEmail(c *gin.Context) {
	customer, err := ctl.customers.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched customer successfully", customer)
}

func (ctl *CustomerController) Search(c *gin.Context) {
	customers, err := ctl.customers.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched customers successfully", customers)
}

func (ctl *CustomerController) Count(c *gin.Context) {
	n, err := ctl.customers.Count(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Counted customers", gin.H{"count": n})
}
