package middleware

import (
	"net/http"

	"big-brain-backend/internal/auth"
	"big-brain-backend/internal/logger"
	"big-brain-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles requests per authenticated user, falling back to the client IP
func RateLimit(limiter *ratelimit.KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := auth.GetUserID(c)
		if !ok {
			key = "ip:" + c.ClientIP()
		}
		if !limiter.Allow(key) {
			logger.WithContext(c.Request.Context()).WithField("key", key).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"msg":     "Too many requests",
				"data":    nil,
			})
			return
		}
		c.Next()
	}
}
