package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders sets baseline security response headers. HSTS is
// deliberately omitted: the demo stack serves plain HTTP inside
// docker-compose.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")

		c.Next()
	}
}
