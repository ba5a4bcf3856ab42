package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.GET("", h.List)          // List reservations (supports ?booked_by= and ?date=)
		group.GET("/:id", h.Get)       // Get reservation details
		group.POST("", h.Create)       // Create reservation
		group.PUT("/:id", h.Update)    // Update reservation
		group.DELETE("/:id", h.Delete) // Delete reservation
	}

	// Per-resource projections
	resources := g.Group("/resources/:id")
	{
		resources.GET("/reservations", h.ListForResource)
		resources.GET("/availability", h.Availability)
	}
}
