package controller

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant/logger"
	"restaurant/service"
	"restaurant/utils"

	"github.com/gin-gonic/gin"
)

func ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// respondError maps service errors onto status codes. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	default:
		log.Error("request failed", "request_id", c.GetString("request_id"), "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, valid := utils.ParseID(c, name)
	if !valid {
		fail(c, http.StatusBadRequest, "Invalid "+name+" format")
	}
	return id, valid
}

func pagination(c *gin.Context) (utils.Pagination, bool) {
	p, err := utils.BindPagination(c)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid pagination: "+err.Error())
		return p, false
	}
	return p, true
}

func deleted(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func pathInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid "+name+" format")
		return 0, false
	}
	return n, true
}
