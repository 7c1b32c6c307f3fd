package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	bookings := g.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.POST("", h.Create)
		bookings.DELETE("/:id", h.Delete)
	}

	availability := g.Group("/availability")
	{
		availability.GET("/day", h.DayAvailability)
		availability.GET("/check", h.CheckRange)
	}
}
