package controller

import (
	"net/http"
	"strconv"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type StaffScheduleController struct {
	schedules *service.StaffScheduleService
	log       *logger.Logger
}

func NewStaffScheduleController(schedules *service.StaffScheduleService, log *logger.Logger) *StaffScheduleController {
	return &StaffScheduleController{schedules: schedules, log: log.WithComponent("staff_schedule_controller")}
}

// List pages through all schedules, or filters them when any of staff_id,
// work_day or work_shift is present in the query.
func (ctl *StaffScheduleController) List(c *gin.Context) {
	var filter repository.ScheduleFilter
	if raw, found := c.GetQuery("staff_id"); found {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			fail(c, http.StatusBadRequest, "Invalid staff_id format")
			return
		}
		staffID := uint(id)
		filter.StaffID = &staffID
	}
	if raw, found := c.GetQuery("work_day"); found {
		day := model.WorkDay(raw)
		filter.Day = &day
	}
	if raw, found := c.GetQuery("work_shift"); found {
		shift := model.WorkShift(raw)
		filter.Shift = &shift
	}

	if filter.StaffID != nil || filter.Day != nil || filter.Shift != nil {
		schedules, err := ctl.schedules.Find(c.Request.Context(), filter)
		if err != nil {
			respondError(c, ctl.log, err)
			return
		}
		ok(c, "Fetched schedules successfully", schedules)
		return
	}

	page, valid := pagination(c)
	if !valid {
		return
	}
	schedules, err := ctl.schedules.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched schedules successfully", schedules)
}

func (ctl *StaffScheduleController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	schedule, err := ctl.schedules.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched schedule successfully", schedule)
}

func (ctl *StaffScheduleController) Create(c *gin.Context) {
	var req service.CreateScheduleInput
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := ctl.schedules.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Schedule created successfully", schedule)
}

func (ctl *StaffScheduleController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateScheduleInput
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := ctl.schedules.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Schedule updated successfully", schedule)
}

func (ctl *StaffScheduleController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.schedules.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}
