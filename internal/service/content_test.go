package service

import (
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_Questions(t *testing.T) {
	svc := NewContentService(newTestCatalog())

	byArea, ok := svc.Questions("law").([]domain.Question)
	require.True(t, ok)
	assert.Len(t, byArea, 2)

	all, ok := svc.Questions("").(map[string][]domain.Question)
	require.True(t, ok)
	assert.Len(t, all, 3)

	unknown, ok := svc.Questions("unknown-id").([]domain.Question)
	require.True(t, ok)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestContentService_CoursesAndExams(t *testing.T) {
	svc := NewContentService(newTestCatalog())

	assert.Len(t, svc.Courses("engineering"), 2)
	assert.Empty(t, svc.Courses("law"))
	assert.IsType(t, map[string][]domain.Course{}, svc.Courses(""))

	assert.Len(t, svc.Exams("law"), 1)
	assert.Empty(t, svc.Exams("medical"))
	assert.IsType(t, map[string][]domain.Exam{}, svc.Exams(""))
}

func TestContentService_Resources(t *testing.T) {
	svc := NewContentService(newTestCatalog())

	t.Run("no filters returns everything", func(t *testing.T) {
		res := svc.Resources("", "")
		require.NotNil(t, res.Exams)
		assert.Len(t, *res.Exams, 3)
		require.NotNil(t, res.Scholarships)
		require.NotNil(t, res.Colleges)
	})

	t.Run("stream narrows exams only", func(t *testing.T) {
		res := svc.Resources("commerce", "")
		require.NotNil(t, res.Exams)
		ids := []string{}
		for _, e := range *res.Exams {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, []string{"cuet-ug", "ca-foundation"}, ids)
		assert.Len(t, *res.Scholarships, 1)
	})

	t.Run("type selects one section", func(t *testing.T) {
		res := svc.Resources("science", ResourceTypeExams)
		require.NotNil(t, res.Exams)
		assert.Len(t, *res.Exams, 2)
		assert.Nil(t, res.Scholarships)
		assert.Nil(t, res.Colleges)

		res = svc.Resources("", ResourceTypeColleges)
		assert.Nil(t, res.Exams)
		require.NotNil(t, res.Colleges)
	})

	t.Run("unknown stream yields empty exams", func(t *testing.T) {
		res := svc.Resources("astrology", ResourceTypeExams)
		require.NotNil(t, res.Exams)
		assert.Empty(t, *res.Exams)
	})

	t.Run("unknown type falls back to full set", func(t *testing.T) {
		res := svc.Resources("", "hostels")
		assert.NotNil(t, res.Exams)
		assert.NotNil(t, res.Scholarships)
		assert.NotNil(t, res.Colleges)
	})
}

func TestQuizService_Submit(t *testing.T) {
	svc := NewQuizService(newTestCatalog())
	assert.Len(t, svc.Questions(), 1)

	result, err := svc.Submit([]domain.Answer{
		{QuestionID: "1", Category: "Science"},
		{QuestionID: "2", Category: "Science"},
		{QuestionID: "3", Category: "Arts"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Science", result.Recommendation)
	assert.Equal(t, 2, result.Breakdown.Count("Science"))
	assert.Equal(t, 1, result.Breakdown.Count("Arts"))

	_, err = svc.Submit(nil)
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))

	_, err = svc.Submit([]domain.Answer{})
	assert.Error(t, err)
}
