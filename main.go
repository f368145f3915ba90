package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/configs"
	"github.com/chathuka55/coffee-me-pos/middlewares"
	"github.com/chathuka55/coffee-me-pos/pkg/logger"
	"github.com/chathuka55/coffee-me-pos/routes"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(cfg.LogLevel)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedSettings(); err != nil {
		log.Error("seed settings failed", "error", err)
		return
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))

	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server starting", "addr", addr, "db", cfg.DBSource)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", "error", err)
	}
}
