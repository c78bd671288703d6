package controller

import (
	"net/http"
	"time"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

const dayLayout = "2006-01-02"

type ReservationController struct {
	reservations *service.ReservationService
	log          *logger.Logger
}

func NewReservationController(reservations *service.ReservationService, log *logger.Logger) *ReservationController {
	return &ReservationController{reservations: reservations, log: log.WithComponent("reservation_controller")}
}

func (ctl *ReservationController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	reservations, err := ctl.reservations.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reservations successfully", reservations)
}

func (ctl *ReservationController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	reservation, err := ctl.reservations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reservation successfully", reservation)
}

func (ctl *ReservationController) Create(c *gin.Context) {
	var req service.CreateReservationInput
	if !bindJSON(c, &req) {
		return
	}
	reservation, err := ctl.reservations.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Reservation created successfully", reservation)
}

func (ctl *ReservationController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateReservationInput
	if !bindJSON(c, &req) {
		return
	}
	reservation, err := ctl.reservations.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Reservation updated successfully", reservation)
}

func (ctl *ReservationController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.reservations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *ReservationController) ListByCustomer(c *gin.Context) {
	id, valid := pathID(c, "customer_id")
	if !valid {
		return
	}
	reservations, err := ctl.reservations.FindByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reservations successfully", reservations)
}

func (ctl *ReservationController) ListByTable(c *gin.Context) {
	id, valid := pathID(c, "table_id")
	if !valid {
		return
	}
	reservations, err := ctl.reservations.FindByTable(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reservations successfully", reservations)
}

func (ctl *ReservationController) ListByStatus(c *gin.Context) {
	reservations, err := ctl.reservations.FindByStatus(c.Request.Context(), model.ReservationStatus(c.Param("status")))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reservations successfully", reservations)
}

// ListByDate expects the day as YYYY-MM-DD.
func (ctl *ReservationController) ListByDate(c *gin.Context) {
	day, err := time.Parse(dayLayout, c.Param("date"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	reservations, err := ctl.reservations.FindByDay(c.Request.Context(), day)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reservations successfully", reservations)
}
