// internal/pkg/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hfashion/storefront/internal/config"
)

// ErrInvalidSession is returned for tokens that fail signature, expiry or
// claim checks
var ErrInvalidSession = errors.New("invalid session token")

// Claims represents the session token claims
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed shopper session tokens. A
// session has no account behind it; the token only proves the session id
// was issued by this server.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg config.SessionConfig, issuer string) *SessionManager {
	return &SessionManager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: issuer,
		now:    time.Now,
	}
}

// TTL returns how long issued tokens stay valid
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// NewSession starts a session with a fresh id
func (m *SessionManager) NewSession() (token, sessionID string, err error) {
	sessionID = uuid.NewString()
	token, err = m.Issue(sessionID)
	return token, sessionID, err
}

// Issue signs a token for sessionID
func (m *SessionManager) Issue(sessionID string) (string, error) {
	now := m.now().UTC()

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   "session:" + sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a token and returns its claims
func (m *SessionManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts a token from an Authorization header
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}
