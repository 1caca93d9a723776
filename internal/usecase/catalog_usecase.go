package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// CatalogUsecase serves the read-only course catalog.
type CatalogUsecase interface {
	ListCourses(ctx context.Context) ([]entity.Course, error)
	GetCourse(ctx context.Context, id int) (*entity.Course, error)
}
