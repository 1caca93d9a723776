package service

import (
	"context"

	"campus/internal/domain/entity"
)

// ProviderIdentity is the normalized account shape returned by the external
// identity provider. Metadata mirrors whatever profile attributes the
// provider stored at signup.
type ProviderIdentity struct {
	ID       string
	Email    string
	FullName string
	Role     entity.Role // Zero value when the provider has no stored role.
	Metadata map[string]string
}

// IdentityProvider wraps the external service of record for credentials.
// Password hashing and storage happen at the provider; this service never
// handles password material beyond forwarding it over the wire.
//
// SignIn maps every provider failure uniformly to ErrInvalidCredentials so
// callers cannot distinguish a wrong password from an unknown user or an
// outage. SignUp maps failures to the sanitized signup taxonomy
// (ErrEmailTaken, ErrSignupRejected).
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*ProviderIdentity, error)
	SignUp(ctx context.Context, email, password string, profile entity.Profile) (*ProviderIdentity, error)
}
