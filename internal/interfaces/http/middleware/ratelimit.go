package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/infrastructure/ratelimit"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/utils"
)

// RateLimit enforces a per-client-IP request budget. Applied to the
// authentication and anonymous submission routes, which are the ones
// reachable without credentials.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, config)
		if err != nil {
			// An unavailable limiter must not take the API down with it.
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
