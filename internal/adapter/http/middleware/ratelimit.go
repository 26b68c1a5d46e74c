package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GNaves/Tasks-API/internal/ratelimit"
	"github.com/GNaves/Tasks-API/pkg/apierrors"
)

// RateLimitMiddleware applies a fixed-window limit shared across all
// clients of an endpoint group. A nil limiter disables the check, which is
// how deployments without redis run.
func RateLimitMiddleware(rl *ratelimit.RateLimiter, key string, limit int, window time.Duration) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		allowed, count, err := rl.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			// Rate limiting is best effort, an unreachable redis must not
			// take the API down with it.
			zap.L().Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.CreateError(apierrors.MsgTooManyRequests, GetLang(c)))
			return
		}

		c.Next()
	}
}

func AuthRateLimit(rl *ratelimit.RateLimiter) gin.HandlerFunc {
	return RateLimitMiddleware(rl, "global:auth", 60, time.Minute)
}
