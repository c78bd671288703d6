package controller

import (
	"restaurant/logger"
	"restaurant/model"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	staff *service.StaffService
	log   *logger.Logger
}

func NewStaffController(staff *service.StaffService, log *logger.Logger) *StaffController {
	return &StaffController{staff: staff, log: log.WithComponent("staff_controller")}
}

func (ctl *StaffController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	members, err := ctl.staff.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched staff successfully", members)
}

func (ctl *StaffController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	member, err := ctl.staff.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched staff member successfully", member)
}

func (ctl *StaffController) Create(c *gin.Context) {
	var req service.CreateStaffInput
	if !bindJSON(c, &req) {
		return
	}
	member, err := ctl.staff.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Staff member created successfully", member)
}

func (ctl *StaffController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateStaffInput
	if !bindJSON(c, &req) {
		return
	}
	member, err := ctl.staff.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Staff member updated successfully", member)
}

func (ctl *StaffController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.staff.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *StaffController) GetByUsername(c *gin.Context) {
	member, err := ctl.staff.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched staff member successfully", member)
}

func (ctl *StaffController) GetByEmail(c *gin.Context) {
	member, err := ctl.staff.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched staff member successfully", member)
}

func (ctl *StaffController) ListByRole(c *gin.Context) {
	members, err := ctl.staff.FindByRole(c.Request.Context(), model.StaffRole(c.Param("role")))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched staff successfully", members)
}

func (ctl *StaffController) Search(c *gin.Context) {
	members, err := ctl.staff.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched staff successfully", members)
}

func (ctl *StaffController) Count(c *gin.Context) {
	n, err := ctl.staff.Count(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Counted staff", gin.H{"count": n})
}
