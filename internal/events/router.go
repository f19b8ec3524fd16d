package events

import (
	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents) // GET /api/events - Browse all events
		publicEvents.GET("/:id", controller.GetEvent) // GET /api/events/:id - Event detail bundle
	}
}
