package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"customer-support/pkg/log"
)

// RequestID tags every request with an id, taken from X-Request-ID when the
// client sends one, and stores it in the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
