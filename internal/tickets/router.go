package tickets

import (
	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	purchases := router.Group("/events")
	{
		purchases.POST("/:id/tickets", controller.CreateTicket) // POST /api/events/:id/tickets - Buy tickets
	}
}
