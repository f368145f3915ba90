package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/pkg/resp"
	"github.com/chathuka55/coffee-me-pos/services"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// Sales handles GET /reports/sales?dateFrom=&dateTo= (both optional).
func (rc *ReportController) Sales(c *gin.Context) {
	dateFrom, err := parseDay(c.Query("dateFrom"), false)
	if err != nil {
		resp.BadRequest(c, "dateFrom must be YYYY-MM-DD")
		return
	}
	dateTo, err := parseDay(c.Query("dateTo"), true)
	if err != nil {
		resp.BadRequest(c, "dateTo must be YYYY-MM-DD")
		return
	}

	report, err := rc.Service.Sales(dateFrom, dateTo)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}
