package repository

import (
	"career-compass/internal/domain"
)

// catalogRepository serves the content store from memory. The catalog is
// immutable after load, so no locking is needed.
type catalogRepository struct {
	catalog *domain.Catalog
	areaSet map[string]struct{}
}

// NewCatalogRepository wraps a loaded catalog.
func NewCatalogRepository(c *domain.Catalog) domain.CatalogRepository {
	areaSet := make(map[string]struct{}, len(c.Areas))
	for _, a := range c.Areas {
		areaSet[a.ID] = struct{}{}
	}
	return &catalogRepository{catalog: c, areaSet: areaSet}
}

func (r *catalogRepository) Areas() []domain.CareerArea {
	return r.catalog.Areas
}

func (r *catalogRepository) AreaExists(areaID string) bool {
	_, ok := r.areaSet[areaID]
	return ok
}

func (r *catalogRepository) AllQuestions() map[string][]domain.Question {
	return r.catalog.Questions
}

func (r *catalogRepository) QuestionsByArea(areaID string) []domain.Question {
	return orEmpty(r.catalog.Questions[areaID])
}

func (r *catalogRepository) AllCourses() map[string][]domain.Course {
	return r.catalog.Courses
}

func (r *catalogRepository) CoursesByArea(areaID string) []domain.Course {
	return orEmpty(r.catalog.Courses[areaID])
}

func (r *catalogRepository) AllExams() map[string][]domain.Exam {
	return r.catalog.Exams
}

func (r *catalogRepository) ExamsByArea(areaID string) []domain.Exam {
	return orEmpty(r.catalog.Exams[areaID])
}

func (r *catalogRepository) Resources() domain.Resources {
	return domain.Resources{
		Exams:        orEmpty(r.catalog.Resources.Exams),
		Scholarships: orEmpty(r.catalog.Resources.Scholarships),
		Colleges:     orEmpty(r.catalog.Resources.Colleges),
	}
}

func (r *catalogRepository) QuizQuestions() []domain.QuizQuestion {
	return orEmpty(r.catalog.QuizQuestions)
}

func (r *catalogRepository) Streams() []domain.Stream {
	return orEmpty(r.catalog.Streams)
}

// orEmpty keeps JSON output as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
