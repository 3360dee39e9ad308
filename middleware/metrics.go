package middleware

import (
	"strconv"
	"time"

	"mlm-ledger/monitoring"

	"github.com/gin-gonic/gin"
)

// Metrics пишет счётчики и гистограмму времени ответа для каждого запроса.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitoring.HttpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		monitoring.ResponseTimeHistogram.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
