package impl

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: params.CatalogRepo}
}

// ListCourses returns the full course catalog.
func (srv *catalogService) ListCourses(ctx context.Context) ([]entity.Course, error) {
	courses, err := srv.catalogRepo.ListCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// GetCourse returns a single catalog entry by id.
func (srv *catalogService) GetCourse(ctx context.Context, id int) (*entity.Course, error) {
	course, err := srv.catalogRepo.FindCourseByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get course %d", id)
	}

	return course, nil
}
