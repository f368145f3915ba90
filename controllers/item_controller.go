package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/pkg/resp"
	"github.com/chathuka55/coffee-me-pos/services"
)

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(svc *services.ItemService) *ItemController {
	return &ItemController{Service: svc}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (ic *ItemController) List(c *gin.Context) {
	items, err := ic.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

func (ic *ItemController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := ic.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

func (ic *ItemController) Create(c *gin.Context) {
	var req services.CreateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item, "Item created successfully")
}

func (ic *ItemController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, item, "Item updated successfully")
}

func (ic *ItemController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ic.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Deleted(c, "Item deleted successfully")
}

type updateStockReq struct {
	Stock *int `json:"stock"`
	Delta *int `json:"delta"`
}

// UpdateStock handles PATCH /items/:id/stock. A body with "stock" sets the
// absolute count; "delta" applies a signed adjustment.
func (ic *ItemController) UpdateStock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Stock == nil && req.Delta == nil {
		resp.BadRequest(c, "stock or delta is required")
		return
	}

	if req.Stock != nil {
		item, err := ic.Service.UpdateStock(id, *req.Stock)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OKMessage(c, item, "Stock updated successfully")
		return
	}

	item, err := ic.Service.AdjustStock(id, *req.Delta)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, item, "Stock updated successfully")
}
