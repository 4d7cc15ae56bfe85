// Package ratelimit provides a redis-backed request limiter for the login route.
package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LoginLimiter returns a gin middleware applying a fixed-window limit per
// client IP. limit is the number of attempts allowed per window. The
// middleware is a no-op when rdb is nil or limit is zero, and fails open
// when redis is unreachable so an outage never locks users out.
func LoginLimiter(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:login:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, failing open", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			// First hit in this window starts the window expiry.
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				slog.Warn("rate limiter expire failed", "key", key, "error", err)
			}
		}

		if count > int64(limit) {
			retry := int(window / time.Second)
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}

		c.Next()
	}
}
