package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/infra/metrics"
	"campus/internal/usecase"
)

// enrollmentService implements the EnrollmentUsecase interface.
type enrollmentService struct {
	enrollRepo repository.EnrollmentRepository
	recorder   metrics.Recorder
	logger     *slog.Logger
}

// EnrollmentServiceParams holds dependencies for enrollmentService, injected by Fx.
type EnrollmentServiceParams struct {
	fx.In

	EnrollRepo repository.EnrollmentRepository
	Recorder   metrics.Recorder
	Logger     *slog.Logger
}

// NewEnrollmentService is the constructor for enrollmentService.
func NewEnrollmentService(params EnrollmentServiceParams) usecase.EnrollmentUsecase {
	return &enrollmentService{
		enrollRepo: params.EnrollRepo,
		recorder:   params.Recorder,
		logger:     params.Logger,
	}
}

func (srv *enrollmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enroll acknowledges an enrollment for the authenticated user. The record
// is stamped server-side and handed to the repository, which only counts
// it; clients keep their own enrollment list.
func (srv *enrollmentService) Enroll(ctx context.Context, identity *entity.Identity, input *usecase.EnrollInput) (*entity.Enrollment, error) {
	enrollment := &entity.Enrollment{
		UserID:     identity.ID,
		CourseID:   input.CourseID,
		CourseName: input.CourseName,
		Instructor: input.Instructor,
		EnrolledAt: time.Now().UTC(),
	}

	if err := srv.enrollRepo.Record(ctx, enrollment); err != nil {
		return nil, errors.Wrap(err, "failed to record enrollment")
	}

	srv.recorder.RecordEnrollment()
	srv.log(ctx).Info("Enrollment acknowledged",
		slog.String("userID", identity.ID),
		slog.Int("courseID", input.CourseID))

	return enrollment, nil
}

// List returns the enrollments stored for the user. With the counting
// repository this is always an empty slice.
func (srv *enrollmentService) List(ctx context.Context, identity *entity.Identity) ([]entity.Enrollment, error) {
	enrollments, err := srv.enrollRepo.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}

	return enrollments, nil
}
