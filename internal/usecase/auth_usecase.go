// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account. The
// optional profile attributes pass through to the identity provider
// unvalidated.
type SignupInput struct {
	Email       string
	Password    string
	FullName    string
	Mobile      string
	Country     string
	DateOfBirth string
	Role        entity.Role
}

// LoginInput defines the data required for a login. The asserted role is
// only a fallback; the issued token carries the provider's stored role.
type LoginInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// --- Output DTOs ---

// AuthOutput returns the issued session token and the identity it was
// issued for.
type AuthOutput struct {
	Token string
	User  entity.Identity
}

// AuthUsecase defines the interface for the signup and login operations.
// This is the contract the delivery layer depends on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
