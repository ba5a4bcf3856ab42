package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers resource-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/resources")
	{
		group.GET("", h.List)          // List resources (supports ?search=)
		group.GET("/:id", h.Get)       // Get resource details
		group.POST("", h.Create)       // Create resource
		group.PATCH("/:id", h.Update)  // Update resource
		group.DELETE("/:id", h.Delete) // Delete resource (rejected while reservations exist)
	}
}
