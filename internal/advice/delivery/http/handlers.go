package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
	"campus-advisor/pkg/response"
)

// List godoc
// @Summary     Advice history
// @Description Advice kept from academic and wellness replies, newest first.
// @Tags        Advice
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       category  query  string false "study_plan, wellness_check, time_management, campus_resource, general"
// @Param       limit     query  int    false "Max entries (default 50)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/advice [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(out))
}
