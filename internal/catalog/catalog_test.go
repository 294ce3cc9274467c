package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.NotEmpty(t, c.Areas)
	assert.Equal(t, "engineering", c.Areas[0].ID)
	assert.NotEmpty(t, c.Questions["engineering"])
	assert.NotEmpty(t, c.Courses["medical"])
	assert.NotEmpty(t, c.Exams["law"])
	assert.NotEmpty(t, c.Resources.Exams)
	assert.NotEmpty(t, c.Resources.Scholarships)
	assert.NotEmpty(t, c.Resources.Colleges)
	assert.Len(t, c.QuizQuestions, 10)
	assert.Equal(t, 1, c.QuizQuestions[0].ID)

	streamIDs := make([]string, 0, len(c.Streams))
	for _, s := range c.Streams {
		streamIDs = append(streamIDs, s.ID)
	}
	assert.Equal(t, []string{"science", "commerce", "arts", "vocational"}, streamIDs)
}

func TestLoad_YAMLOverride(t *testing.T) {
	dir := t.TempDir()
	quiz := `questions:
  - id: 1
    question: I like numbers.
    categories:
      agree: Commerce
      disagree: Arts
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FixtureQuiz+".yaml"), []byte(quiz), 0o644))

	c, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, c.QuizQuestions, 1)
	assert.Equal(t, "I like numbers.", c.QuizQuestions[0].Question)
	assert.Equal(t, "Commerce", c.QuizQuestions[0].Categories.Agree)
	// untouched fixtures still come from the embedded set
	assert.NotEmpty(t, c.Areas)
}

func TestLoad_JSONOverrideTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FixtureStreams+".json"),
		[]byte(`{"streams":[{"id":"science","name":"Science"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FixtureStreams+".yml"),
		[]byte("streams: []\n"), 0o644))

	c, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, c.Streams, 1)
	assert.Equal(t, "science", c.Streams[0].ID)
}

func TestLoad_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FixtureAreas+".json"), []byte(`{"areas": [`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FixtureAreas)
}

func TestValidate(t *testing.T) {
	valid := func() *domain.Catalog {
		return &domain.Catalog{
			Areas:     []domain.CareerArea{{ID: "law"}},
			Questions: map[string][]domain.Question{"law": {{ID: "law-q1"}}},
			QuizQuestions: []domain.QuizQuestion{
				{ID: 1, Categories: domain.QuizCategories{Agree: "Arts", Disagree: "Science"}},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *domain.Catalog)
		wantErr string
	}{
		{name: "valid", mutate: func(c *domain.Catalog) {}},
		{name: "no areas", mutate: func(c *domain.Catalog) { c.Areas = nil }, wantErr: "no career areas"},
		{name: "duplicate area", mutate: func(c *domain.Catalog) {
			c.Areas = append(c.Areas, domain.CareerArea{ID: "law"})
		}, wantErr: "duplicate career area"},
		{name: "unknown area key", mutate: func(c *domain.Catalog) {
			c.Courses = map[string][]domain.Course{"astronomy": {{ID: "x"}}}
		}, wantErr: "astronomy"},
		{name: "quiz missing category", mutate: func(c *domain.Catalog) {
			c.QuizQuestions[0].Categories.Disagree = ""
		}, wantErr: "missing a category"},
		{name: "duplicate quiz id", mutate: func(c *domain.Catalog) {
			c.QuizQuestions = append(c.QuizQuestions, c.QuizQuestions[0])
		}, wantErr: "duplicate quiz question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
