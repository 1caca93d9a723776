package repository

import (
	"context"

	"campus/internal/domain/entity"
)

// EnrollmentRepository records enrollment acknowledgements. The server does
// not persist enrollments, since the client session store is authoritative,
// so Record is fire-and-forget and ListByUser always yields the empty set.
// The interface exists so the recorder stays an explicit stub rather than
// an implicit one.
type EnrollmentRepository interface {
	Record(ctx context.Context, enrollment *entity.Enrollment) error
	ListByUser(ctx context.Context, userID string) ([]entity.Enrollment, error)
}
