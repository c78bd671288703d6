package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const DefaultLimit = 100

type Pagination struct {
	Skip  int `form:"skip" binding:"gte=0"`
	Limit int `form:"limit" binding:"gte=0,lte=1000"`
}

// BindPagination reads skip/limit from the query string; a zero limit means DefaultLimit.
func BindPagination(c *gin.Context) (Pagination, error) {
	p := Pagination{}
	if err := c.ShouldBindQuery(&p); err != nil {
		return p, err
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p, nil
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
