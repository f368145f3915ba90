package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/controllers"
	"github.com/chathuka55/coffee-me-pos/repository"
	"github.com/chathuka55/coffee-me-pos/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// Repositories
	itemRepo := repository.NewItemRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	itemSvc := services.NewItemService(itemRepo)
	tableSvc := services.NewTableService(tableRepo)
	orderSvc := services.NewOrderService(db, orderRepo, itemRepo, tableRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	reportSvc := services.NewReportService(reportRepo)

	// Controllers
	itemCtrl := controllers.NewItemController(itemSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	items := api.Group("/items")
	{
		items.GET("", itemCtrl.List)
		items.GET("/:id", itemCtrl.Detail)
		items.POST("", itemCtrl.Create)
		items.PUT("/:id", itemCtrl.Update)
		items.DELETE("/:id", itemCtrl.Delete)
		items.PATCH("/:id/stock", itemCtrl.UpdateStock)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/pending", orderCtrl.ListPending)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("", orderCtrl.Create)
		orders.POST("/:id/checkout", orderCtrl.Checkout)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	tables := api.Group("/tables")
	{
		tables.GET("", tableCtrl.List)
		tables.GET("/:id", tableCtrl.Detail)
		tables.POST("", tableCtrl.Create)
		tables.PUT("/:id", tableCtrl.Update)
		tables.DELETE("/:id", tableCtrl.Delete)
		tables.PATCH("/:id/status", tableCtrl.UpdateStatus)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", settingsCtrl.Get)
		settings.PUT("", settingsCtrl.Update)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/sales", reportCtrl.Sales)
	}
}
