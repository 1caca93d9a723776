package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/config"
	"campus/internal/domain/entity"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Token.Secret = "test_secret_key_very_long_for_testing"
	cfg.Token.TTL = ttl

	return cfg
}

func testIdentity() entity.Identity {
	return entity.Identity{
		ID:       "8f14e45f-ceea-4e52-a7e4-7d6f4f0a8c11",
		Email:    "a@b.com",
		FullName: "Test Student",
		Role:     entity.RoleStudent,
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	identity := testIdentity()

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.UserID())
	assert.Equal(t, identity.Email, claims.Email)
	assert.Equal(t, identity.FullName, claims.FullName)
	assert.Equal(t, identity.Role, claims.Role)
	assert.Equal(t, identity, claims.Identity())
}

func TestJWTService_UnboundedTokenWhenTTLZero(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(0))
	require.NoError(t, err)

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one bit in the signature segment.
	sig := []byte(parts[2])
	sig[0] ^= 0x01
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Validate(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenSignedWithOtherSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestConfig(time.Hour)
	otherCfg.Token.Secret = "a_completely_different_secret_key"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "token secret must be provided")
}
