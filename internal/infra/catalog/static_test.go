package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/errors"
)

func TestStaticRepository_ListCourses_IsPure(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	first, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, first, 5)

	// Mutating a returned slice must not leak into the catalog.
	first[0].Title = "mutated"
	first[0].Enrolled = true

	second, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Java", second[0].Title)
	assert.False(t, second[0].Enrolled)
	assert.Len(t, second, 5)
}

func TestStaticRepository_CatalogContents(t *testing.T) {
	repo := NewStaticRepository()

	courses, err := repo.ListCourses(context.Background())
	require.NoError(t, err)

	titles := make([]string, 0, len(courses))
	for _, c := range courses {
		titles = append(titles, c.Title)
		assert.False(t, c.Enrolled)
		assert.NotEmpty(t, c.Instructor)
		assert.NotEmpty(t, c.UpiID)
		assert.NotEmpty(t, c.Materials)
	}
	assert.Equal(t, []string{"Java", "Advanced Java", "Java Mastery", "Python", "React"}, titles)
}

func TestStaticRepository_FindCourseByID(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	course, err := repo.FindCourseByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Python", course.Title)
	assert.Equal(t, "Sarah", course.Instructor)

	missing, err := repo.FindCourseByID(ctx, 99)
	assert.Nil(t, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
