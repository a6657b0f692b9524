package middleware

import (
	"net/http"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/config"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window Redis counter, keyed per IP, method, and
// endpoint. Applied to the console CRUD surface; the login route and the
// public storefront deliberately run without it.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
		}

		ttl, _ := config.RedisClient.TTL(config.Ctx, key).Result()
		if ttl < 0 {
			ttl = window
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        time.Now().Add(ttl),
			ResetInSeconds: int(ttl.Seconds()),
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
