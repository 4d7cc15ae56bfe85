package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"places_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key under which the resolved user is stored.
const ContextUser = "currentUser"

// Verifier verifies a bearer token and returns its subject claim.
type Verifier interface {
	Verify(token string) (string, error)
}

// UserResolver resolves a token subject to a user identity.
// A token may be structurally valid while its user no longer exists.
type UserResolver interface {
	CurrentUser(ctx context.Context, subject string) (*entity.User, error)
}

// AuthRequired returns a gin middleware that validates bearer tokens,
// resolves the subject to a user and restricts access to authenticated users.
func AuthRequired(tokens Verifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry, extract subject
		subject, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		// 3. Resolve subject to a user (may have been deleted after issuance)
		user, err := users.CurrentUser(c.Request.Context(), subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, or nil when absent.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}
