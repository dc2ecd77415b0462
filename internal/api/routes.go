package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MrWebMD/hamurai-name-server/internal/api/handlers"
	"github.com/MrWebMD/hamurai-name-server/internal/api/middleware"
	"github.com/MrWebMD/hamurai-name-server/internal/config"

	_ "github.com/MrWebMD/hamurai-name-server/internal/api/docs" // swagger docs
)

// RegisterRoutes wires the /api/v1 endpoints and Swagger UI onto r.
// /api/v1/health stays open so probes work without the API key.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.GET("/health", h.Health)

	api := v1.Group("")
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/stats", h.Stats)
	api.GET("/zone", h.GetZone)
	api.GET("/config", h.GetConfig)
	api.GET("/settings", h.ListSettings)
	api.PUT("/settings/:key", h.PutSetting)
}
