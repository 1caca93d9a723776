package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/config"
	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	"campus/internal/domain/service"
	"campus/internal/infra/auth"
)

func newGuardedEcho(t *testing.T) (*echo.Echo, service.TokenService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token.Secret = "test-secret"
	cfg.Token.TTL = time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.Default()).HandleHTTPError

	authMW := NewAuthMiddleware(tokenSvc)
	guarded := e.Group("/guarded")
	guarded.Use(authMW.Authenticate)
	guarded.GET("", func(c echo.Context) error {
		identity, ok := IdentityFromContext(c)
		require.True(t, ok)

		return response.Success(c, http.StatusOK, identity, "")
	})

	admin := e.Group("/admin")
	admin.Use(authMW.Authenticate)
	admin.Use(authMW.RequireRole(entity.RoleAdmin))
	admin.GET("", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, nil, "")
	})

	return e, tokenSvc
}

func issueToken(t *testing.T, tokenSvc service.TokenService, role entity.Role) string {
	t.Helper()

	token, err := tokenSvc.Issue(entity.Identity{
		ID:       "user-1",
		Email:    "amit@example.com",
		FullName: "Amit Kumar",
		Role:     role,
	})
	require.NoError(t, err)

	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e, _ := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization token required")
	assert.Contains(t, rec.Body.String(), "AUTH_REQUIRED")
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	e, _ := newGuardedEcho(t)

	// A credential in the wrong scheme is no authorization at all.
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization token required")
	assert.Contains(t, rec.Body.String(), "AUTH_REQUIRED")
}

func TestAuthMiddleware_EmptyBearerToken(t *testing.T) {
	e, _ := newGuardedEcho(t)

	// The bearer scheme was presented, so the empty token is the codec's
	// failure to report.
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer ")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	e, _ := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, tokenSvc := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokenSvc, entity.RoleStudent))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amit@example.com")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	e, tokenSvc := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokenSvc, entity.RoleStudent))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokenSvc, entity.RoleAdmin))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
