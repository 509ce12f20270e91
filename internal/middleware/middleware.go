package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contentSecurityPolicy limits potential XSS attacks and effects.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'none'",
	"script-src 'self' www.google-analytics.com",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' www.google-analytics.com",
	"connect-src 'self' www.google-analytics.com",
	"frame-src 'self'",
	"font-src 'self' data:",
	"object-src 'self'",
	"media-src 'self'",
}, "; ")

// CSP sets the content security policy on every response.
func CSP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", contentSecurityPolicy)
		c.Next()
	}
}

// RequestID tags each request with an id for log correlation. An id
// supplied by an upstream proxy is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
