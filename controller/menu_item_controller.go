package controller

import (
	"net/http"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type MenuItemController struct {
	items *service.MenuItemService
	log   *logger.Logger
}

func NewMenuItemController(items *service.MenuItemService, log *logger.Logger) *MenuItemController {
	return &MenuItemController{items: items, log: log.WithComponent("menu_item_controller")}
}

func (ctl *MenuItemController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	items, err := ctl.items.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched menu items successfully", items)
}

func (ctl *MenuItemController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	item, err := ctl.items.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched menu item successfully", item)
}

func (ctl *MenuItemController) Create(c *gin.Context) {
	var req service.CreateMenuItemInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.items.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Menu item added successfully", item)
}

func (ctl *MenuItemController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateMenuItemInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.items.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Menu item updated successfully", item)
}

func (ctl *MenuItemController) Delete(c *gin.Context) {
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

func (ctl *MenuItemController) ListAvailable(c *gin.Context) {
	items, err := ctl.items.FindAvailable(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched available menu items", items)
}

func (ctl *MenuItemController) ListByType(c *gin.Context) {
	items, err := ctl.items.FindByType(c.Request.Context(), model.ItemType(c.Param("type")))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched menu items successfully", items)
}

// Import accepts a multipart xlsx upload in the "file" field.
func (ctl *MenuItemController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "Excel file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Unable to open Excel file")
		return
	}
	defer file.Close()

	result, err := ctl.items.Import(c.Request.Context(), file)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Menu items imported", result)
}
