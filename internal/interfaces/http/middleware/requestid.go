package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/instamakaan/instamakaan/internal/shared/constants"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

const maxRequestIDLength = 128

// RequestID propagates X-Request-ID, generating one when the client sent
// none, and makes it available to loggers through the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
