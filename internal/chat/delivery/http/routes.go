package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
)

// RegisterRoutes maps /chat/*. Every route needs X-User-ID; ask is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	c := rg.Group("/chat", mw.Auth())
	{
		c.POST("/ask", mw.RateLimit(), h.Ask)
		c.GET("/history", h.History)
		c.DELETE("/history", h.ClearHistory)
		c.POST("/stop", h.Stop)
	}
}
