package router

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/handler"
	"salesdesk/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
// documentH is nil when the S3 provider serves downloads directly.
func Setup(
	eventH *handler.EventHandler,
	documentH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.GET("/health", healthH.Health)

	v1 := r.Group("/api/v1")

	events := v1.Group("/events")
	events.POST("/message", eventH.Message)
	events.POST("/callback", eventH.Callback)

	if documentH != nil {
		v1.GET("/documents/*key", documentH.Download)
	}

	return r
}
