package http

import (
	"github.com/gin-gonic/gin"

	"campus-advisor/internal/middleware"
	pkgErrors "campus-advisor/pkg/errors"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, string, error) {
	var req updateReq
	userID := middleware.UserID(c)
	if userID == "" {
		return req, "", pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	return req, userID, nil
}
