package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// EnrollInput defines the data required to acknowledge an enrollment.
type EnrollInput struct {
	CourseID   int
	CourseName string
	Instructor string
}

// EnrollmentUsecase records enrollment acknowledgements for authenticated
// identities. The caller must already have passed the session guard.
type EnrollmentUsecase interface {
	// Enroll returns an acknowledgement echoing the input plus a server
	// timestamp. There is no duplicate check; the client session store is
	// the system of record.
	Enroll(ctx context.Context, identity *entity.Identity, input *EnrollInput) (*entity.Enrollment, error)

	// List returns the identity's server-side enrollments, which is always
	// the empty set in this design.
	List(ctx context.Context, identity *entity.Identity) ([]entity.Enrollment, error)
}
