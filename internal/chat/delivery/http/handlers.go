package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-advisor/internal/chat"
	"campus-advisor/internal/middleware"
	"campus-advisor/pkg/response"
)

// Ask godoc
// @Summary     Ask the advisor
// @Description Routes the message to the academic, wellness, campus-life or general handler and returns its reply. Crisis messages always get the emergency reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       body      body   askReq true "Message"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if strings.TrimSpace(req.Message) == "" {
			err = h.mapError(chat.ErrEmptyMessage)
		}
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ask(ctx, req.toInput(middleware.UserID(c)))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAskResp(out))
}

// History godoc
// @Summary     Conversation history
// @Description Newest turns in chronological order.
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       limit     query  int    false "Max messages (default 20)"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.History(ctx, chat.HistoryInput{UserID: middleware.UserID(c), Limit: req.Limit})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHistoryResp(out))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, middleware.UserID(c)); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"message": "Conversation cleared"})
}

// Stop godoc
// @Summary     Stop generation
// @Description Best-effort cancellation of the caller's in-flight replies.
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} stopResp
// @Router      /api/v1/chat/stop [POST]
func (h *handler) Stop(c *gin.Context) {
	n := h.uc.Stop(c.Request.Context(), middleware.UserID(c))
	response.OK(c, stopResp{Message: "Generation stopped", Cancelled: n})
}
