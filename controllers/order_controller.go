package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/pkg/resp"
	"github.com/chathuka55/coffee-me-pos/repository"
	"github.com/chathuka55/coffee-me-pos/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// parseDay parses a YYYY-MM-DD query value. endOfDay makes the bound
// inclusive for the whole day.
func parseDay(v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (oc *OrderController) List(c *gin.Context) {
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

	orders, err := oc.Service.List(repository.OrderFilters{
		Status:    c.Query("status"),
		OrderType: c.Query("orderType"),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

func (oc *OrderController) ListPending(c *gin.Context) {
	orders, err := oc.Service.ListPending()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := oc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order, "Order created successfully")
}

func (oc *OrderController) Checkout(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := oc.Service.Checkout(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, order, "Order completed successfully")
}

type orderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req orderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}
	order, err := oc.Service.UpdateStatus(id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, order, "Order status updated successfully")
}

func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := oc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Deleted(c, "Order deleted successfully")
}
