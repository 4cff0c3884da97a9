package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-taskhub/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests to protect the store connection.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			response.Err(c, http.StatusServiceUnavailable, "server busy")
			c.Abort()
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
