package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	BrochureHandler *BrochureHandler
	AllowedOrigins  []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", healthCheck)

	api := router.Group("/api")
	{
		api.POST("/brochure/data", cfg.BrochureHandler.SaveData)
		api.GET("/brochure/data", cfg.BrochureHandler.LoadData)
		api.POST("/brochure/generate", cfg.BrochureHandler.Generate)
	}

	return router
}
