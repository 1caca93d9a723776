package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
)

const (
	// KeyIdentity is the echo.Context key under which the guard stores
	// the authenticated identity.
	KeyIdentity = "identity"

	bearerPrefix = "Bearer "
)

// AuthMiddleware guards routes behind a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and stores the token's
// identity on the request context. A header that does not present a bearer
// token at all counts as missing authorization; only a bearer token the
// codec rejects is reported as invalid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.WithStack(domainerrors.ErrAuthRequired)
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
		}

		identity := claims.Identity()
		c.Set(KeyIdentity, &identity)

		return next(c)
	}
}

// RequireRole restricts a route to identities carrying the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(KeyIdentity).(*entity.Identity)
			if !ok {
				return errors.WithStack(domainerrors.ErrAuthRequired)
			}

			if identity.Role != requiredRole {
				return errors.Wrapf(domainerrors.ErrForbidden, "requires %q role", requiredRole)
			}

			return next(c)
		}
	}
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(KeyIdentity).(*entity.Identity)

	return identity, ok
}
