// Package repository defines the persistence contracts the use cases
// depend on.
package repository

import (
	"context"

	"campus/internal/domain/entity"
)

// CatalogRepository serves the static course catalog. The catalog is a
// fixed table; implementations must return the same result on every call.
type CatalogRepository interface {
	ListCourses(ctx context.Context) ([]entity.Course, error)
	FindCourseByID(ctx context.Context, id int) (*entity.Course, error)
}
