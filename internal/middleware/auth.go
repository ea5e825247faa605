package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-advisor/pkg/log"
	"campus-advisor/pkg/response"
)

// Auth requires the caller to identify with X-User-ID. Session mechanics live
// in front of this service.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		c.Set(ctxKeyUserID, userID)
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// UserID returns the id stored by Auth, or "".
func UserID(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}
