package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

const (
	// SessionIDKey is the context key holding the shopper session id
	SessionIDKey = "session_id"
	// SessionHeader carries the session token for clients without cookies
	SessionHeader = "X-Session-Token"
)

// SessionOptions configures the session cookie
type SessionOptions struct {
	CookieName string
	Secure     bool
}

// Session resolves the shopper session from the session cookie, the
// X-Session-Token header or a bearer token, in that order. Requests without a
// valid token get a new session; its token is returned in both the cookie
// and the X-Session-Token response header.
func Session(manager *auth.SessionManager, opts SessionOptions, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c, opts.CookieName)
		if token != "" {
			if claims, err := manager.Validate(token); err == nil {
				c.Set(SessionIDKey, claims.SessionID)
				c.Next()
				return
			}
		}

		token, sessionID, err := manager.NewSession()
		if err != nil {
			log.WithError(err).Error("Failed to issue session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start session",
			})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, token, int(manager.TTL().Seconds()), "/", "", opts.Secure, true)
		c.Header(SessionHeader, token)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	if token := c.GetHeader(SessionHeader); token != "" {
		return token
	}
	return auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
}

// GetSessionID returns the session id resolved by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
