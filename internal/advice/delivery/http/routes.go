package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/advice", mw.Auth(), h.List)
}
