// Package memory holds in-process implementations of the repository
// contracts. Nothing here survives a restart; the client session store is
// the system of record for enrollments.
package memory

import (
	"context"
	"sync/atomic"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
)

// enrollmentRepository acknowledges enrollments without storing them.
// Record only keeps a running count for observability; ListByUser always
// returns the empty set because the server holds no enrollment state.
type enrollmentRepository struct {
	recorded atomic.Int64
}

// NewEnrollmentRepository is the constructor for the enrollment recorder stub.
func NewEnrollmentRepository() repository.EnrollmentRepository {
	return &enrollmentRepository{}
}

// Record accepts the acknowledgement. Duplicate (user, course) pairs are
// accepted as-is; de-duplication is the client's contract.
func (r *enrollmentRepository) Record(_ context.Context, _ *entity.Enrollment) error {
	r.recorded.Add(1)

	return nil
}

// ListByUser returns the empty set for every user.
func (r *enrollmentRepository) ListByUser(_ context.Context, _ string) ([]entity.Enrollment, error) {
	return []entity.Enrollment{}, nil
}
