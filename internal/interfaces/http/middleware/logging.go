package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// Logger writes one access line per request. Routes are logged by pattern
// (/inquiries/:id) so the line can be grouped; the concrete path is kept too.
// Public inquiry submissions carry personal data in the body, which is never logged.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		reqLog := logger.FromContext(c.Request.Context(), log)
		if actor := authorization.ActorFromContext(c); actor.IsAuthenticated() {
			reqLog = reqLog.With("actor_id", actor.ID, "role", actor.Role.String())
		}

		args := []any{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"bytes", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			reqLog.Errorw("request failed", args...)
		case status == 401 || status == 403 || status == 429:
			reqLog.Infow("request rejected", args...)
		case status >= 400:
			reqLog.Warnw("request invalid", args...)
		default:
			reqLog.Debugw("request served", args...)
		}
	}
}
