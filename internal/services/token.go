package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whyismeleige/rental-ads/pkg/apperr"
)

// TokenManager issues and verifies stateless signed bearer tokens.
// Validity is signature plus expiry only; there is no revocation list,
// so logout is a client-side concern.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a token bound to the given user id.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the token and returns the bound user id. Missing,
// malformed, expired and badly signed tokens all fail the same way.
func (m *TokenManager) Verify(token string) (string, error) {
	if token == "" {
		return "", apperr.Authentication("token is required")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", apperr.Authentication("invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.Authentication("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperr.Authentication("invalid token claims")
	}
	return sub, nil
}
