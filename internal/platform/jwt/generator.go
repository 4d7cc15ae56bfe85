// Package jwtmw provides JWT issuing, verification and the gin auth middleware.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification errors. Handlers map all of them to 401.
var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed is returned when the token is structurally invalid
	// or its signature does not verify.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrMissingSubject is returned when a verified token carries no sub claim.
	ErrMissingSubject = errors.New("token missing subject")
)

// fallbackTTL is used when Issue is called without a positive TTL.
// Note this differs from the 30 minute application default on purpose;
// the mismatch is inherited behavior (see DESIGN.md).
const fallbackTTL = 15 * time.Minute

// Config carries the signing parameters for the token service.
// It is injected explicitly instead of being read from ambient globals.
type Config struct {
	// Secret is the server-held HMAC signing key.
	Secret []byte

	// Method is the signing algorithm. Defaults to HS256.
	Method jwt.SigningMethod

	// DefaultTTL is used when Issue receives a non-positive ttl.
	// Defaults to 15 minutes.
	DefaultTTL time.Duration
}

// Service issues and verifies signed, self-contained bearer tokens
// carrying a subject claim and an expiry.
type Service struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// NewService creates a token service from the given config.
func NewService(cfg Config) *Service {
	method := cfg.Method
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = fallbackTTL
	}
	return &Service{
		secret:     cfg.Secret,
		method:     method,
		defaultTTL: ttl,
	}
}

// Issue creates a signed token for the given subject.
// A non-positive ttl falls back to the service default.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns its subject.
// It returns ErrTokenExpired, ErrTokenMalformed or ErrMissingSubject.
func (s *Service) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !token.Valid {
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}
