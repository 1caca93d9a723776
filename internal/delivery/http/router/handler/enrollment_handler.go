package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/usecase"
)

// EnrollmentHandlerParams holds dependencies for EnrollmentHandler, injected by Fx.
type EnrollmentHandlerParams struct {
	fx.In

	EnrollmentUC usecase.EnrollmentUsecase
	Logger       *slog.Logger
}

// EnrollmentHandler holds dependencies for enrollment handlers
type EnrollmentHandler struct {
	enrollmentUC usecase.EnrollmentUsecase
	logger       *slog.Logger
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler
func NewEnrollmentHandler(params EnrollmentHandlerParams) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUC: params.EnrollmentUC,
		logger:       params.Logger,
	}
}

// EnrollRequest represents the request body for recording an enrollment.
type EnrollRequest struct {
	CourseID   int    `json:"courseId" validate:"required"`
	CourseName string `json:"courseName" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
}

// EnrollResponse acknowledges the enrollment with a server timestamp.
type EnrollResponse struct {
	Message    string             `json:"message"`
	Enrollment *entity.Enrollment `json:"enrollment"`
}

// ListEnrollmentsResponse wraps the stored enrollment list.
type ListEnrollmentsResponse struct {
	Enrollments []entity.Enrollment `json:"enrollments"`
}

// Enroll acknowledges an enrollment for the authenticated user.
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	identity, err := h.identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EnrollRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "MISSING_FIELDS", "Required fields are missing")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "MISSING_FIELDS", "Required fields are missing")
	}

	input := &usecase.EnrollInput{
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Instructor: req.Instructor,
	}

	enrollment, err := h.enrollmentUC.Enroll(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, EnrollResponse{
		Message:    "Enrollment successful",
		Enrollment: enrollment,
	}, "Enrollment successful")
}

// List returns the enrollments stored server-side, which is always the
// empty set while clients keep their own lists.
func (h *EnrollmentHandler) List(c echo.Context) error {
	identity, err := h.identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	enrollments, err := h.enrollmentUC.List(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if enrollments == nil {
		enrollments = []entity.Enrollment{}
	}

	return response.Success(c, http.StatusOK, ListEnrollmentsResponse{
		Enrollments: enrollments,
	}, "Enrollments retrieved successfully")
}

// identity extracts the authenticated identity placed by the auth middleware.
func (h *EnrollmentHandler) identity(c echo.Context) (*entity.Identity, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	return identity, nil
}
