package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/pkg/resp"
	"github.com/chathuka55/coffee-me-pos/services"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Service: svc}
}

func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

func (tc *TableController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := tc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Create(c *gin.Context) {
	var req services.CreateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, t, "Table created successfully")
}

func (tc *TableController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.UpdateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, t, "Table updated successfully")
}

func (tc *TableController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := tc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Deleted(c, "Table deleted successfully")
}

type tableStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (tc *TableController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req tableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}
	t, err := tc.Service.SetStatus(id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, t, "Table status updated successfully")
}
