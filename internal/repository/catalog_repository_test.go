package repository

import (
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Areas: []domain.CareerArea{{ID: "engineering"}, {ID: "law"}},
		Questions: map[string][]domain.Question{
			"engineering": {{ID: "eng-q1"}, {ID: "eng-q2"}},
		},
		Courses: map[string][]domain.Course{
			"law": {{ID: "ballb"}},
		},
		Exams: map[string][]domain.Exam{
			"engineering": {{ID: "jee-main"}},
		},
		Resources: domain.Resources{
			Exams: []domain.ResourceExam{{ID: "clat", ForStreams: []string{"arts"}}},
		},
		QuizQuestions: []domain.QuizQuestion{{ID: 1}},
	}
}

func TestCatalogRepository_Filters(t *testing.T) {
	repo := NewCatalogRepository(testCatalog())

	assert.Len(t, repo.Areas(), 2)
	assert.True(t, repo.AreaExists("law"))
	assert.False(t, repo.AreaExists("astronomy"))

	assert.Len(t, repo.QuestionsByArea("engineering"), 2)
	assert.Len(t, repo.AllQuestions(), 1)
	assert.Len(t, repo.CoursesByArea("law"), 1)
	assert.Len(t, repo.ExamsByArea("engineering"), 1)
	assert.Len(t, repo.QuizQuestions(), 1)
}

func TestCatalogRepository_UnknownKeysYieldEmpty(t *testing.T) {
	repo := NewCatalogRepository(testCatalog())

	questions := repo.QuestionsByArea("unknown-id")
	assert.NotNil(t, questions)
	assert.Empty(t, questions)

	// known area with nothing authored for it
	courses := repo.CoursesByArea("engineering")
	assert.NotNil(t, courses)
	assert.Empty(t, courses)

	assert.NotNil(t, repo.ExamsByArea("law"))
	assert.NotNil(t, repo.Streams())

	res := repo.Resources()
	assert.NotNil(t, res.Scholarships)
	assert.NotNil(t, res.Colleges)
	assert.Len(t, res.Exams, 1)
}
