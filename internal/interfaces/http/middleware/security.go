package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityOptions tunes SecurityHeaders
type SecurityOptions struct {
	// HSTS adds Strict-Transport-Security; only enable behind TLS
	HSTS bool
	// ServerName replaces the Server header
	ServerName string
}

// SecurityHeaders adds security headers to responses. Session-scoped API
// responses are marked no-store so shared caches never hold a cart or order.
func SecurityHeaders(opts SecurityOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		h.Set("Cache-Control", "no-store")
		if opts.HSTS {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		if opts.ServerName != "" {
			h.Set("Server", opts.ServerName)
		}

		c.Next()
	}
}
