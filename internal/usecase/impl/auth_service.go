// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/infra/metrics"
	"campus/internal/usecase"
)

// authService implements the AuthUsecase interface. Each request is a
// single provider round trip followed by token issuance; there is no local
// user table and nothing is retried.
type authService struct {
	provider service.IdentityProvider
	tokenSvc service.TokenService
	recorder metrics.Recorder
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider service.IdentityProvider
	TokenSvc service.TokenService
	Recorder metrics.Recorder
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		provider: params.Provider,
		tokenSvc: params.TokenSvc,
		recorder: params.Recorder,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account at the identity provider and issues a session
// token. The submitted role is what the provider stores, so the echoed
// role always equals the submitted one.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "signup requires email, password and full name")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleStudent
	}
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "unknown role %q", input.Role)
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email), slog.Any("role", role))
	srv.recorder.RecordSignupAttempt()

	profile := entity.Profile{
		FullName:    input.FullName,
		Mobile:      input.Mobile,
		Country:     input.Country,
		DateOfBirth: input.DateOfBirth,
		Role:        role,
	}

	start := time.Now()
	created, err := srv.provider.SignUp(ctx, input.Email, input.Password, profile)
	srv.recorder.RecordProviderLatency(time.Since(start))
	if err != nil {
		srv.recordSignupFailure(err)
		srv.log(ctx).Warn("Signup rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "signup failed")
	}

	identity := entity.Identity{
		ID:       created.ID,
		Email:    created.Email,
		FullName: input.FullName,
		Role:     role,
	}

	token, err := srv.tokenSvc.Issue(identity)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Signup completed", slog.String("userID", identity.ID))

	return &usecase.AuthOutput{Token: token, User: identity}, nil
}

// Login verifies credentials at the provider and issues a session token.
// The role claim derives from the provider's stored attribute; the
// asserted role is only a fallback for accounts with no stored role.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "login requires email, password and role")
	}
	// The asserted role can end up in the token as the fallback claim, so
	// it faces the same closed-set check as signup.
	if !input.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "unknown role %q", input.Role)
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))
	srv.recorder.RecordLoginAttempt()

	start := time.Now()
	account, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	srv.recorder.RecordProviderLatency(time.Since(start))
	if err != nil {
		srv.recorder.RecordLoginFailure()
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		// Uniformly opaque: the caller never learns which failure occurred.
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	role := account.Role
	if role == "" {
		role = input.Role
	} else if role != input.Role {
		srv.log(ctx).Warn("Asserted role differs from stored role",
			slog.String("userID", account.ID),
			slog.Any("asserted", input.Role),
			slog.Any("stored", role))
	}

	identity := entity.Identity{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
		Role:     role,
	}

	token, err := srv.tokenSvc.Issue(identity)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.String("userID", identity.ID))

	return &usecase.AuthOutput{Token: token, User: identity}, nil
}

func (srv *authService) recordSignupFailure(err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		srv.recorder.RecordSignupFailure(appErr.ErrorCode())

		return
	}

	srv.recorder.RecordSignupFailure("UNKNOWN")
}
