// Package middleware provides HTTP middleware for the weather service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/raghhhava7/Devclimate-BE/internal/service"
)

const identityContextKey = "identity"

var (
	// ErrMissingCredential is returned when no credential is presented.
	ErrMissingCredential = errors.New("authorization required")
	// ErrInvalidCredential is returned when the presented credential fails
	// verification, including expiry.
	ErrInvalidCredential = errors.New("invalid or expired token")
)

// Identity is the resolved caller attached to a request. Downstream code
// depends only on this shape, never on how it was authenticated.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// Authenticator resolves the caller's identity from a request, or rejects
// it. Implementations exist per deployment variant; the bearer-token one is
// BearerAuthenticator, and a hosted identity provider can be swapped in
// behind the same interface.
type Authenticator interface {
	ResolveIdentity(c *gin.Context) (*Identity, error)
}

// BearerAuthenticator verifies self-issued bearer tokens.
type BearerAuthenticator struct {
	tokens service.TokenService
}

// NewBearerAuthenticator creates an Authenticator backed by the token service.
func NewBearerAuthenticator(tokens service.TokenService) *BearerAuthenticator {
	return &BearerAuthenticator{tokens: tokens}
}

// ResolveIdentity extracts and verifies the Authorization bearer token.
func (a *BearerAuthenticator) ResolveIdentity(c *gin.Context) (*Identity, error) {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, ErrMissingCredential
	}

	claims, err := a.tokens.ValidateToken(parts[1])
	if err != nil {
		return nil, ErrInvalidCredential
	}

	return &Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}

// RequireAuth returns middleware that resolves the caller's identity and
// attaches it to the request context, or rejects the request. A missing
// credential is a 401; a credential that fails verification is a 403.
func RequireAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authenticator.ResolveIdentity(c)
		if err != nil {
			status := http.StatusForbidden
			if errors.Is(err, ErrMissingCredential) {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity attached by RequireAuth.
func IdentityFromContext(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}
