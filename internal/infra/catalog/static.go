// Package catalog provides the static course catalog. The catalog is a
// fixed, server-defined table; nothing creates or mutates courses at
// runtime.
package catalog

import (
	"context"

	"github.com/pkg/errors"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
)

// staticRepository serves the fixed course table. ListCourses returns a
// copy so callers can never mutate the catalog.
type staticRepository struct {
	courses []entity.Course
}

// NewStaticRepository is the constructor for the static catalog.
func NewStaticRepository() repository.CatalogRepository {
	return &staticRepository{courses: courseTable}
}

// ListCourses returns every catalog entry, identical on every call.
func (r *staticRepository) ListCourses(_ context.Context) ([]entity.Course, error) {
	out := make([]entity.Course, len(r.courses))
	copy(out, r.courses)

	return out, nil
}

// FindCourseByID returns a single catalog entry.
func (r *staticRepository) FindCourseByID(_ context.Context, id int) (*entity.Course, error) {
	for _, course := range r.courses {
		if course.ID == id {
			c := course

			return &c, nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrNotFound, "course %d not in catalog", id)
}

var courseTable = []entity.Course{
	{
		ID:          1,
		Title:       "Java",
		Instructor:  "Arpit",
		Description: "Comprehensive Java programming course covering fundamentals to advanced concepts. Learn object-oriented programming, data structures, and build real-world applications.",
		Price:       100,
		Image:       "/icons/course-icon.svg",
		Category:    "Programming",
		Duration:    "8 weeks",
		Level:       "Beginner",
		CreatedDate: "25/8/2025",
		UpiID:       "arrpit@ybl",
		Materials: []entity.CourseMaterial{
			{FileName: "java-fundamentals-guide.pdf", FileType: "application/pdf", FileSize: "2.4 MB"},
			{FileName: "java-exercise-solutions.zip", FileType: "application/zip", FileSize: "1.8 MB"},
		},
	},
	{
		ID:          2,
		Title:       "Advanced Java",
		Instructor:  "Rekha",
		Description: "Advanced Java programming techniques including Spring Framework, Hibernate, and enterprise application development. Perfect for experienced developers.",
		Price:       500,
		Image:       "/icons/course-icon.svg",
		Category:    "Programming",
		Duration:    "12 weeks",
		Level:       "Intermediate",
		CreatedDate: "15/7/2025",
		UpiID:       "rekha@paytm",
		Materials: []entity.CourseMaterial{
			{FileName: "spring-framework-tutorial.pdf", FileType: "application/pdf", FileSize: "3.2 MB"},
			{FileName: "hibernate-examples.zip", FileType: "application/zip", FileSize: "2.1 MB"},
			{FileName: "enterprise-java-project.zip", FileType: "application/zip", FileSize: "5.6 MB"},
		},
	},
	{
		ID:          3,
		Title:       "Java Mastery",
		Instructor:  "Ankit",
		Description: "Master-level Java course covering microservices, performance optimization, and architectural patterns. Designed for senior developers and architects.",
		Price:       200,
		Image:       "/icons/course-icon.svg",
		Category:    "Programming",
		Duration:    "10 weeks",
		Level:       "Advanced",
		CreatedDate: "10/9/2025",
		UpiID:       "ankit@gpay",
		Materials: []entity.CourseMaterial{
			{FileName: "microservices-architecture.pdf", FileType: "application/pdf", FileSize: "4.1 MB"},
			{FileName: "performance-optimization-guide.pdf", FileType: "application/pdf", FileSize: "2.8 MB"},
		},
	},
	{
		ID:          4,
		Title:       "Python",
		Instructor:  "Sarah",
		Description: "Complete Python programming course from basics to advanced. Learn web development with Django, data science with pandas, and automation scripting.",
		Price:       150,
		Image:       "/icons/course-icon.svg",
		Category:    "Programming",
		Duration:    "6 weeks",
		Level:       "Beginner",
		CreatedDate: "5/8/2025",
		UpiID:       "sarah@phonepe",
		Materials: []entity.CourseMaterial{
			{FileName: "python-basics-handbook.pdf", FileType: "application/pdf", FileSize: "1.9 MB"},
			{FileName: "django-project-template.zip", FileType: "application/zip", FileSize: "3.4 MB"},
		},
	},
	{
		ID:          5,
		Title:       "React",
		Instructor:  "Mike",
		Description: "Modern React development course covering hooks, context API, Redux, and testing. Build scalable web applications with the latest React patterns and best practices.",
		Price:       300,
		Image:       "/icons/course-icon.svg",
		Category:    "Web Development",
		Duration:    "8 weeks",
		Level:       "Intermediate",
		CreatedDate: "20/7/2025",
		UpiID:       "mike@upi",
		Materials: []entity.CourseMaterial{
			{FileName: "react-hooks-guide.pdf", FileType: "application/pdf", FileSize: "2.7 MB"},
			{FileName: "redux-toolkit-examples.zip", FileType: "application/zip", FileSize: "4.2 MB"},
			{FileName: "react-testing-library-setup.zip", FileType: "application/zip", FileSize: "1.5 MB"},
		},
	},
}
