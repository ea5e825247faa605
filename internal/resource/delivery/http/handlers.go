package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/resource"
	"campus-advisor/pkg/response"
)

// List godoc
// @Summary     Campus resources
// @Description Catalog of clubs, services, support offices, facilities and events, ordered by name.
// @Tags        Resources
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       category  query  string false "club, service, support, facility, event"
// @Param       tag       query  string false "Single tag, e.g. wellness"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/resources [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, resource.ListInput{Category: req.Category, Tag: req.Tag})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newListResp(out))
}
