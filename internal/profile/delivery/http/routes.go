package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
)

// RegisterRoutes maps /users (public) and /profile/me (authenticated).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/users", h.Register)

	me := rg.Group("/profile/me", mw.Auth())
	{
		me.GET("", h.Me)
		me.PUT("", h.UpdateMe)
	}
}
