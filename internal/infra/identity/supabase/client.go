// Package supabase implements the IdentityProvider contract against a
// GoTrue-style REST API. The provider owns credential storage and password
// hashing; this client only forwards requests and normalizes responses.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"campus/config"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
)

const defaultTimeout = 10 * time.Second

// Client talks to the identity provider's auth endpoints. Each call is a
// single synchronous round trip; there is no retry or backoff policy.
type Client struct {
	baseURL string
	anonKey string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	sb := cfg.Identity.Supabase
	if sb == nil || sb.URL == "" {
		return nil, errors.New("supabase url must be provided")
	}

	timeout := sb.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(sb.URL, "/"),
		anonKey: sb.AnonKey,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// providerUser mirrors the user object GoTrue returns, either at the top
// level or nested under "user".
type providerUser struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type providerResponse struct {
	providerUser
	User *providerUser `json:"user"`
}

type providerError struct {
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *providerError) message() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Error
	}
}

// SignIn delegates to the provider's password grant. Every failure, from a
// wrong password to a provider outage, maps uniformly to
// ErrInvalidCredentials so the caller cannot tell which occurred.
func (c *Client) SignIn(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
	body := map[string]string{"email": email, "password": password}

	user, status, err := c.post(ctx, "/auth/v1/token?grant_type=password", body)
	if err != nil {
		c.logger.Warn("Provider sign-in failed",
			slog.String("email", email),
			slog.Int("status", status),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in rejected by provider")
	}

	return user, nil
}

// SignUp delegates account creation to the provider. Failures map to the
// sanitized signup taxonomy; the provider's own message is logged, never
// surfaced.
func (c *Client) SignUp(ctx context.Context, email, password string, profile entity.Profile) (*service.ProviderIdentity, error) {
	metadata := map[string]string{
		"full_name": profile.FullName,
	}
	if profile.Mobile != "" {
		metadata["mobile"] = profile.Mobile
	}
	if profile.Country != "" {
		metadata["country"] = profile.Country
	}
	if profile.DateOfBirth != "" {
		metadata["date_of_birth"] = profile.DateOfBirth
	}
	if profile.Role != "" {
		metadata["role"] = profile.Role.String()
	}

	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     metadata,
	}

	user, status, err := c.post(ctx, "/auth/v1/signup", body)
	if err != nil {
		c.logger.Warn("Provider sign-up failed",
			slog.String("email", email),
			slog.Int("status", status),
			slog.Any("error", err))

		return nil, mapSignUpError(status, err)
	}

	return user, nil
}

func mapSignUpError(status int, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already registered") || strings.Contains(msg, "already exists"):
		return errors.Wrap(domainerrors.ErrEmailTaken, "sign up rejected by provider")
	case status == 0 || status >= http.StatusInternalServerError:
		return errors.Wrap(domainerrors.ErrProviderUnavailable, "provider unreachable during sign up")
	default:
		return errors.Wrap(domainerrors.ErrSignupRejected, "sign up rejected by provider")
	}
}

// post performs one provider round trip and decodes the user payload. The
// returned status is zero when the request never reached the provider.
func (c *Client) post(ctx context.Context, path string, payload any) (*service.ProviderIdentity, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to encode provider request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "provider request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "failed to read provider response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var perr providerError
		if err := json.Unmarshal(data, &perr); err == nil && perr.message() != "" {
			return nil, resp.StatusCode, errors.Errorf("provider returned %d: %s", resp.StatusCode, perr.message())
		}

		return nil, resp.StatusCode, errors.Errorf("provider returned %d", resp.StatusCode)
	}

	var decoded providerResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "failed to decode provider response")
	}

	user := decoded.providerUser
	if decoded.User != nil {
		user = *decoded.User
	}
	if user.ID == "" {
		return nil, resp.StatusCode, errors.New("provider response missing user id")
	}

	return toProviderIdentity(user), resp.StatusCode, nil
}

func toProviderIdentity(user providerUser) *service.ProviderIdentity {
	identity := &service.ProviderIdentity{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.UserMetadata["full_name"],
		Metadata: user.UserMetadata,
	}
	if role, ok := entity.RoleFromString(user.UserMetadata["role"]); ok {
		identity.Role = role
	}

	return identity
}
