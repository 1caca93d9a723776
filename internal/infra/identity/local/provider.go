// Package local implements the IdentityProvider contract with an
// in-process account store. It exists for development and tests, where a
// real provider deployment is not available; the error taxonomy matches
// the supabase client exactly.
package local

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
)

type account struct {
	id           string
	email        string
	passwordHash []byte
	profile      entity.Profile
}

// Provider stores accounts in memory, keyed by email. Passwords are
// bcrypt-hashed the way a real provider would store them.
type Provider struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

// NewProvider is the constructor for Provider.
func NewProvider() *Provider {
	return &Provider{accounts: make(map[string]*account)}
}

// SignIn checks the stored credential. Unknown users and wrong passwords
// are indistinguishable to the caller.
func (p *Provider) SignIn(_ context.Context, email, password string) (*service.ProviderIdentity, error) {
	p.mu.RLock()
	acct, ok := p.accounts[normalizeEmail(email)]
	p.mu.RUnlock()

	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown account")
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return acct.toIdentity(), nil
}

// SignUp creates an account, rejecting duplicate emails.
func (p *Provider) SignUp(_ context.Context, email, password string, profile entity.Profile) (*service.ProviderIdentity, error) {
	if password == "" {
		return nil, errors.Wrap(domainerrors.ErrSignupRejected, "empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	key := normalizeEmail(email)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[key]; exists {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "account already registered")
	}

	acct := &account{
		id:           uuid.New().String(),
		email:        email,
		passwordHash: hash,
		profile:      profile,
	}
	p.accounts[key] = acct

	return acct.toIdentity(), nil
}

func (a *account) toIdentity() *service.ProviderIdentity {
	metadata := map[string]string{"full_name": a.profile.FullName}
	if a.profile.Mobile != "" {
		metadata["mobile"] = a.profile.Mobile
	}
	if a.profile.Country != "" {
		metadata["country"] = a.profile.Country
	}
	if a.profile.DateOfBirth != "" {
		metadata["date_of_birth"] = a.profile.DateOfBirth
	}
	if a.profile.Role != "" {
		metadata["role"] = a.profile.Role.String()
	}

	return &service.ProviderIdentity{
		ID:       a.id,
		Email:    a.email,
		FullName: a.profile.FullName,
		Role:     a.profile.Role,
		Metadata: metadata,
	}
}

// Emails are unique and case-sensitive as stored, matching the data model.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
