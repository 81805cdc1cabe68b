package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Tamil182006/AI-Stylist-manoj/config"
)

// NewRouter creates and configures the Gin router.
func NewRouter(cfg *config.Config, handler *Handler, logger *logrus.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(CORS(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.Health)

	v1 := router.Group("/api")
	{
		v1.POST("/products/search", handler.SearchProducts)
		v1.GET("/outfits/search", handler.SearchOutfits)
	}

	return router
}
