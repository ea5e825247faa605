package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
	pkgErrors "campus-advisor/pkg/errors"
	"campus-advisor/pkg/response"
)

// Register godoc
// @Summary     Register a student
// @Description Creates a user with an empty profile. The returned id is sent as X-User-ID afterwards.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration data"
// @Success     201  {object} userEnvelope
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already registered"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "profile.http.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, userEnvelope{User: newUserResp(out.User)})
}

// Me godoc
// @Summary     Get my profile
// @Tags        Profile
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} userEnvelope
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/profile/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID := middleware.UserID(c)
	if userID == "" {
		response.Error(c, pkgErrors.ErrUnauthorized, nil)
		return
	}

	out, err := h.uc.Detail(ctx, userID)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, userEnvelope{User: newUserResp(out.User)})
}

// UpdateMe godoc
// @Summary     Update my profile
// @Description Partial update. Omitted fields are left unchanged.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} userEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/profile/me [PUT]
func (h *handler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	req, userID, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput(userID))
	if err != nil {
		h.l.Warnf(ctx, "profile.http.UpdateMe: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, userEnvelope{User: newUserResp(out.User)})
}
