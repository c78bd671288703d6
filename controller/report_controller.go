package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"restaurant/logger"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reports *service.ReportService
	log     *logger.Logger
}

func NewReportController(reports *service.ReportService, log *logger.Logger) *ReportController {
	return &ReportController{reports: reports, log: log.WithComponent("report_controller")}
}

func (ctl *ReportController) Sales(c *gin.Context) {
	var buf bytes.Buffer
	if err := ctl.reports.WriteSalesReport(c.Request.Context(), &buf); err != nil {
		respondError(c, ctl.log, err)
		return
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format(dayLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
