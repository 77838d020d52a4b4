package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-task-extractor/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen bounds a caller-supplied request id.
const maxRequestIDLen = 128

// RequestID propagates the caller's X-Request-ID or generates one, echoes it
// on the response and stores it in the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
