package http

import (
	"github.com/gin-gonic/gin"

	"household-calendar/internal/middleware"
)

// RegisterRoutes maps the event store endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Scope())
	{
		events.POST("", h.Create)
		events.POST("/batch", h.BatchCreate)
		events.GET("", h.List)
		events.GET("/export.ics", h.ExportICS)
		events.DELETE("/recurrence/:recurrenceId", h.DeleteByRecurrence)
		events.DELETE("/:id", h.Delete)
	}
}
