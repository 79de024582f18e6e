package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/infrastructure/metrics"
	"github.com/instamakaan/instamakaan/internal/infrastructure/ratelimit"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

// RateLimiter limits an endpoint per client IP. Requests pass when the
// backing store is unreachable so that an outage does not block every lead.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	scope   string
	limit   ratelimit.Limit
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, perMinute int, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		limit:   ratelimit.Limit{RequestsPerMinute: perMinute},
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := rl.scope + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limit)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request",
				"scope", rl.scope,
				"client_ip", c.ClientIP(),
				"error", err,
			)
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitedTotal.Inc()
			utils.ErrorResponseWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
