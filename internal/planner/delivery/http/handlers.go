package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
	"campus-advisor/pkg/response"
)

// StudySchedule godoc
// @Summary     Weekly study schedule
// @Description Spreads 2-hour blocks for each course across next week, optionally pushing them to Google Calendar.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           true "Caller id"
// @Param       body      body   studyScheduleReq true "Courses and availability"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/study-schedule [POST]
func (h *handler) StudySchedule(c *gin.Context) {
	ctx := c.Request.Context()

	var req studyScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.StudySchedule(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newScheduleResp(out))
}

// ExamPrep godoc
// @Summary     Exam preparation plan
// @Description Daily sessions leading up to an exam. exam_date accepts YYYY-MM-DD or phrases like "in 5 days" and "next friday".
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller id"
// @Param       body      body   examPrepReq true "Exam details"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/exam-prep [POST]
func (h *handler) ExamPrep(c *gin.Context) {
	ctx := c.Request.Context()

	var req examPrepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExamPrep(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newScheduleResp(out))
}
