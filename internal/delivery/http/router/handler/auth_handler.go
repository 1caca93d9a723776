// Package handler contains the HTTP handlers for all routes.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	"campus/internal/usecase"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest represents the request body for creating an account.
// Mobile, country and date of birth are stored as provider metadata
// and never validated server-side.
type SignupRequest struct {
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	FullName    string `json:"fullName" validate:"required"`
	Mobile      string `json:"mobile"`
	Country     string `json:"country"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        string `json:"role"`
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// AuthResponse is the payload returned by both auth endpoints.
type AuthResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    entity.Identity `json:"user"`
}

// Signup handles account creation. Shape validation happens before the
// identity provider is contacted.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "MISSING_FIELDS", "Required fields are missing")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "MISSING_FIELDS", "Required fields are missing")
	}

	input := &usecase.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Mobile:      req.Mobile,
		Country:     req.Country,
		DateOfBirth: req.DateOfBirth,
		Role:        entity.Role(req.Role),
	}

	out, err := h.authUC.Signup(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		Message: "Signup successful",
		Token:   out.Token,
		User:    out.User,
	}, "Signup successful")
}

// Login handles credential verification and token issuance.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "MISSING_FIELDS", "Required fields are missing")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "MISSING_FIELDS", "Required fields are missing")
	}

	input := &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	}

	out, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   out.Token,
		User:    out.User,
	}, "Login successful")
}
