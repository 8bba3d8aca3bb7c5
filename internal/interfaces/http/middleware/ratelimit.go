package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/infrastructure/ratelimit"
	"github.com/arbor-inc/arbor/internal/shared/constants"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, config ratelimit.Config, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

// Limit throttles by authenticated user when an identity is present, falling
// back to client IP for anonymous endpoints.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(constants.ContextKeyUserID)
		if key == "" {
			key = c.ClientIP()
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.config)
		if err != nil {
			// Availability wins over throttling when the limiter backend is down.
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
