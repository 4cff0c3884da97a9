package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-taskhub/internal/transport/http/response"
)

// RateLimit is a global token bucket over all requests.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		response.Err(c, http.StatusTooManyRequests, "too many requests")
		c.Abort()
	}
}
