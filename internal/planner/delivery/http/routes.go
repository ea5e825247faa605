package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/planner", mw.Auth())
	g.POST("/study-schedule", h.StudySchedule)
	g.POST("/exam-prep", h.ExamPrep)
}
