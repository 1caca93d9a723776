package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/infra/catalog"
)

func TestCatalogService_ListCourses(t *testing.T) {
	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalog.NewStaticRepository(),
	})

	courses, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 5)
	assert.Equal(t, "Java", courses[0].Title)
}

func TestCatalogService_GetCourse(t *testing.T) {
	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalog.NewStaticRepository(),
	})

	course, err := svc.GetCourse(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Java Mastery", course.Title)

	missing, err := svc.GetCourse(context.Background(), 42)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
