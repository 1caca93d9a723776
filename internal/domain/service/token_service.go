// Package service defines the domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"campus/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token. The subject
// holds the provider-assigned identity id.
type Claims struct {
	Email    string      `json:"email"`
	FullName string      `json:"name"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the provider-assigned identity id the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// Identity rebuilds the identity attributes embedded in the claims.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		ID:       c.Subject,
		Email:    c.Email,
		FullName: c.FullName,
		Role:     c.Role,
	}
}

// TokenService defines the interface for issuing and validating session
// tokens. It abstracts the token format from the use cases.
type TokenService interface {
	// Issue creates a signed token carrying the identity's claims.
	Issue(identity entity.Identity) (string, error)

	// Validate checks a token string and returns the claims it was issued
	// with. It reports failure through the error; it never panics across
	// the trust boundary.
	Validate(token string) (*Claims, error)
}
