package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the upload page and the comparison API.
func RegisterRoutes(router *gin.Engine, h *ComparisonHandler) {
	router.GET("/", h.Home)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/preview", h.Preview)
		api.POST("/compare", h.Compare)
	}
}
