package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/validator"
	"campus/internal/domain/entity"
	"campus/internal/usecase"
)

// fakeEnrollmentUsecase acknowledges enrollments without any storage.
type fakeEnrollmentUsecase struct {
	enrollCalls int
}

func (f *fakeEnrollmentUsecase) Enroll(_ context.Context, identity *entity.Identity, input *usecase.EnrollInput) (*entity.Enrollment, error) {
	f.enrollCalls++

	return &entity.Enrollment{
		UserID:     identity.ID,
		CourseID:   input.CourseID,
		CourseName: input.CourseName,
		Instructor: input.Instructor,
		EnrolledAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeEnrollmentUsecase) List(context.Context, *entity.Identity) ([]entity.Enrollment, error) {
	return []entity.Enrollment{}, nil
}

func newEnrollTestContext(t *testing.T, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/courses/enroll", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(middleware.KeyIdentity, identity)
	}

	return c, rec
}

func TestEnrollmentHandler_Enroll_Acknowledges(t *testing.T) {
	uc := &fakeEnrollmentUsecase{}
	h := NewEnrollmentHandler(EnrollmentHandlerParams{EnrollmentUC: uc, Logger: slog.Default()})

	identity := &entity.Identity{ID: "user-1", Email: "amit@example.com", Role: entity.RoleStudent}
	c, rec := newEnrollTestContext(t,
		`{"courseId":1,"courseName":"Java","instructor":"Arpit Jain"}`, identity)
	require.NoError(t, h.Enroll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.enrollCalls)

	var envelope struct {
		Data EnrollResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Enrollment successful", envelope.Data.Message)
	assert.Equal(t, "user-1", envelope.Data.Enrollment.UserID)
	assert.Equal(t, 1, envelope.Data.Enrollment.CourseID)
	assert.False(t, envelope.Data.Enrollment.EnrolledAt.IsZero())
}

func TestEnrollmentHandler_Enroll_MissingFields(t *testing.T) {
	uc := &fakeEnrollmentUsecase{}
	h := NewEnrollmentHandler(EnrollmentHandlerParams{EnrollmentUC: uc, Logger: slog.Default()})

	identity := &entity.Identity{ID: "user-1", Role: entity.RoleStudent}
	c, rec := newEnrollTestContext(t, `{"courseId":1}`, identity)
	require.NoError(t, h.Enroll(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FIELDS")
	assert.Zero(t, uc.enrollCalls)
}

func TestEnrollmentHandler_Enroll_NoIdentity(t *testing.T) {
	uc := &fakeEnrollmentUsecase{}
	h := NewEnrollmentHandler(EnrollmentHandlerParams{EnrollmentUC: uc, Logger: slog.Default()})

	c, rec := newEnrollTestContext(t,
		`{"courseId":1,"courseName":"Java","instructor":"Arpit Jain"}`, nil)
	require.NoError(t, h.Enroll(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, uc.enrollCalls)
}

func TestEnrollmentHandler_List_AlwaysEmptyArray(t *testing.T) {
	uc := &fakeEnrollmentUsecase{}
	h := NewEnrollmentHandler(EnrollmentHandlerParams{EnrollmentUC: uc, Logger: slog.Default()})

	identity := &entity.Identity{ID: "user-1", Role: entity.RoleStudent}
	c, rec := newEnrollTestContext(t, "", identity)
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"enrollments":[]`)
}
