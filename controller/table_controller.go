package controller

import (
	"restaurant/logger"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	tables *service.TableService
	log    *logger.Logger
}

func NewTableController(tables *service.TableService, log *logger.Logger) *TableController {
	return &TableController{tables: tables, log: log.WithComponent("table_controller")}
}

func (ctl *TableController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	tables, err := ctl.tables.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched tables successfully", tables)
}

func (ctl *TableController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	table, err := ctl.tables.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched table successfully", table)
}

func (ctl *TableController) Create(c *gin.Context) {
	var req service.CreateTableInput
	if !bindJSON(c, &req) {
		return
	}
	table, err := ctl.tables.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Table created successfully", table)
}

func (ctl *TableController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateTableInput
	if !bindJSON(c, &req) {
		return
	}
	table, err := ctl.tables.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Table updated successfully", table)
}

func (ctl *TableController) SetOccupied(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req struct {
		IsOccupied *bool `json:"is_occupied" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	table, err := ctl.tables.SetOccupied(c.Request.Context(), id, *req.IsOccupied)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Table status updated", table)
}

func (ctl *TableController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.tables.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *TableController) ListAvailable(c *gin.Context) {
	tables, err := ctl.tables.FindAvailable(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched available tables", tables)
}

func (ctl *TableController) ListOccupied(c *gin.Context) {
	tables, err := ctl.tables.FindOccupied(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched occupied tables", tables)
}

func (ctl *TableController) ListBySize(c *gin.Context) {
	size, valid := pathInt(c, "size")
	if !valid {
		return
	}
	tables, err := ctl.tables.FindBySize(c.Request.Context(), size)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched tables successfully", tables)
}

// ListAvailableBySize returns free tables of exactly the requested size.
func (ctl *TableController) ListAvailableBySize(c *gin.Context) {
	size, valid := pathInt(c, "size")
	if !valid {
		return
	}
	tables, err := ctl.tables.FindAvailableBySize(c.Request.Context(), size)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched available tables", tables)
}
