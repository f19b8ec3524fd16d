// api/routes/router.go
package routes

import (
	"net/http"

	"ticketly/internal/events"
	"ticketly/internal/notifications"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"
	"ticketly/internal/shared/utils/response"
	"ticketly/internal/tickets"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	api := engine.Group(r.config.APIPrefix)
	{
		r.setupHealthRoutes(api)
		r.setupEventRoutes(api)
		r.setupTicketRoutes(api)
	}
}

// setupHealthRoutes sets up the health check route
func (r *Router) setupHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, response.HealthBody{Status: "ok"})
	})
}

// setupEventRoutes configures the event read routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo, ticketRepo)
	eventController := events.NewController(eventService)

	events.SetupEventRoutes(rg, eventController)
}

// setupTicketRoutes configures the ticket purchase route
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	ticketService := tickets.NewService(ticketRepo)

	if r.producer != nil {
		ticketService.SetProducer(r.producer)
	}

	ticketController := tickets.NewController(ticketService)
	tickets.SetupTicketRoutes(rg, ticketController)
}
