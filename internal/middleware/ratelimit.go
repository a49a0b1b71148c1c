package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meritlives/tools-core/internal/pkg/response"
	"github.com/redis/go-redis/v9"
)

// 100 requests per 15-minute window per IP, same budget the original API enforced.
const (
	rateLimitMax    = 100
	rateLimitWindow = 15 * time.Minute
)

// RateLimit returns a middleware enforcing a fixed-window per-IP rate limit
// backed by Redis. Authenticated requests are exempt.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
		key := fmt.Sprintf("ml:rate_limit:%s:%d", ip, window)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis down: let traffic through rather than hard-failing reads.
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, rateLimitWindow+time.Second)
		}

		if count > rateLimitMax {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
			response.TooManyRequests(c, "Too many requests, please try again later.")
			return
		}

		c.Next()
	}
}
