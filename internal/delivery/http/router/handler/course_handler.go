package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	"campus/internal/usecase"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CourseHandler holds dependencies for catalog handlers
type CourseHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CatalogResponse is the payload for the course listing.
type CatalogResponse struct {
	Courses []entity.Course `json:"courses"`
	Total   int             `json:"total"`
}

// ListCourses returns the whole catalog. Public, no auth.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.catalogUC.ListCourses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CatalogResponse{
		Courses: courses,
		Total:   len(courses),
	}, "Courses retrieved successfully")
}

// GetCourse returns a single catalog entry. Public, no auth.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid course ID")
	}

	course, err := h.catalogUC.GetCourse(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, course, "Course retrieved successfully")
}
