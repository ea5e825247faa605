package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-advisor/pkg/log"
)

// RequestID propagates X-Request-ID, generating one when absent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
