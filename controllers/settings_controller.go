package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/pkg/resp"
	"github.com/chathuka55/coffee-me-pos/services"
)

type SettingsController struct {
	Service *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Service: svc}
}

func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.Service.Get()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, settings)
}

func (sc *SettingsController) Update(c *gin.Context) {
	var req services.UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	settings, err := sc.Service.Update(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, settings, "Settings updated successfully")
}
