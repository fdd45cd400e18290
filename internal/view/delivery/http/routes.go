package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	views := rg.Group("/views")
	{
		views.POST("/schedule", h.Schedule)
		views.POST("/list/:kind", h.List)
		views.GET("/state/:kind", h.State)
	}
}
