package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/errors"
)

func TestProvider_SignUpAndSignIn(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	created, err := p.SignUp(ctx, "a@b.com", "secret123", entity.Profile{
		FullName:    "Alice B",
		Role:        entity.RoleStudent,
		Country:     "India",
		DateOfBirth: "2000-01-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a@b.com", created.Email)
	assert.Equal(t, entity.RoleStudent, created.Role)
	assert.Equal(t, "India", created.Metadata["country"])

	signed, err := p.SignIn(ctx, "a@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, signed.ID)
	assert.Equal(t, "Alice B", signed.FullName)
}

func TestProvider_SignIn_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	_, err := p.SignUp(ctx, "a@b.com", "secret123", entity.Profile{FullName: "Alice"})
	require.NoError(t, err)

	_, wrongPass := p.SignIn(ctx, "a@b.com", "wrong")
	_, unknownUser := p.SignIn(ctx, "nobody@b.com", "secret123")

	assert.True(t, errors.Is(wrongPass, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownUser, domainerrors.ErrInvalidCredentials))
}

func TestProvider_SignUp_DuplicateEmail(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	_, err := p.SignUp(ctx, "a@b.com", "secret123", entity.Profile{FullName: "Alice"})
	require.NoError(t, err)

	_, err = p.SignUp(ctx, "a@b.com", "other-pass", entity.Profile{FullName: "Imposter"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestProvider_SignUp_EmptyPassword(t *testing.T) {
	p := NewProvider()

	_, err := p.SignUp(context.Background(), "a@b.com", "", entity.Profile{FullName: "Alice"})
	assert.True(t, errors.Is(err, domainerrors.ErrSignupRejected))
}

func TestProvider_EmailIsCaseSensitive(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	_, err := p.SignUp(ctx, "Alice@b.com", "secret123", entity.Profile{FullName: "Alice"})
	require.NoError(t, err)

	_, err = p.SignIn(ctx, "alice@b.com", "secret123")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
