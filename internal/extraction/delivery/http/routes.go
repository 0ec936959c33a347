package http

import (
	"github.com/gin-gonic/gin"

	"household-calendar/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. It is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), mw.Scope(), h.Chat)
}
