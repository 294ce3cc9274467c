package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"career-compass/internal/domain"
	"career-compass/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.json
var embedded embed.FS

// Fixture base names. Each may be overridden by <name>.json, <name>.yaml or
// <name>.yml in the override directory.
const (
	FixtureAreas        = "career-areas"
	FixtureQuestions    = "questions"
	FixtureCoursesExams = "courses-exams"
	FixtureResources    = "resources"
	FixtureQuiz         = "quiz"
	FixtureStreams      = "streams"
)

type areasFile struct {
	Areas []domain.CareerArea `json:"areas" yaml:"areas"`
}

type questionsFile struct {
	Questions map[string][]domain.Question `json:"questions" yaml:"questions"`
}

type coursesExamsFile struct {
	Courses map[string][]domain.Course `json:"courses" yaml:"courses"`
	Exams   map[string][]domain.Exam   `json:"exams" yaml:"exams"`
}

type quizFile struct {
	Questions []domain.QuizQuestion `json:"questions" yaml:"questions"`
}

type streamsFile struct {
	Streams []domain.Stream `json:"streams" yaml:"streams"`
}

var overrideExts = []string{".json", ".yaml", ".yml"}

// Load builds the catalog from the embedded fixtures, replacing any fixture
// for which dir holds an override. An empty dir loads embedded data only.
func Load(dir string) (*domain.Catalog, error) {
	var (
		areas        areasFile
		questions    questionsFile
		coursesExams coursesExamsFile
		resources    domain.Resources
		quiz         quizFile
		streams      streamsFile
	)

	fixtures := []struct {
		name string
		dst  any
	}{
		{FixtureAreas, &areas},
		{FixtureQuestions, &questions},
		{FixtureCoursesExams, &coursesExams},
		{FixtureResources, &resources},
		{FixtureQuiz, &quiz},
		{FixtureStreams, &streams},
	}
	for _, f := range fixtures {
		if err := loadFixture(dir, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	c := &domain.Catalog{
		Areas:         areas.Areas,
		Questions:     nonNilMap(questions.Questions),
		Courses:       nonNilMap(coursesExams.Courses),
		Exams:         nonNilMap(coursesExams.Exams),
		Resources:     resources,
		QuizQuestions: quiz.Questions,
		Streams:       streams.Streams,
	}
	if err := Validate(c); err != nil {
		return nil, err
	}

	logger.Get().Info("Content catalog loaded",
		zap.Int("areas", len(c.Areas)),
		zap.Int("quizQuestions", len(c.QuizQuestions)),
		zap.Int("streams", len(c.Streams)),
		zap.String("overrideDir", dir))
	return c, nil
}

func loadFixture(dir, name string, dst any) error {
	if dir != "" {
		for _, ext := range overrideExts {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return fmt.Errorf("read catalog override %s: %w", path, err)
			}
			if err := decode(ext, data, dst); err != nil {
				return fmt.Errorf("decode catalog override %s: %w", path, err)
			}
			logger.Get().Info("Using catalog override", zap.String("path", path))
			return nil
		}
	}

	data, err := embedded.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("read embedded fixture %s: %w", name, err)
	}
	if err := decode(".json", data, dst); err != nil {
		return fmt.Errorf("decode embedded fixture %s: %w", name, err)
	}
	return nil
}

func decode(ext string, data []byte, dst any) error {
	if ext == ".json" {
		return json.Unmarshal(data, dst)
	}
	return yaml.Unmarshal(data, dst)
}

// Validate checks the structural invariants handlers rely on: unique area
// ids, keyed collections referring to known areas, and quiz questions that
// vote for a category on both responses.
func Validate(c *domain.Catalog) error {
	if len(c.Areas) == 0 {
		return errors.New("catalog: no career areas defined")
	}
	known := make(map[string]bool, len(c.Areas))
	for _, a := range c.Areas {
		if a.ID == "" {
			return errors.New("catalog: career area with empty id")
		}
		if known[a.ID] {
			return fmt.Errorf("catalog: duplicate career area %q", a.ID)
		}
		known[a.ID] = true
	}

	var unknown []string
	for _, keyed := range []map[string]int{
		keysOf(c.Questions), keysOf(c.Courses), keysOf(c.Exams),
	} {
		for area := range keyed {
			if !known[area] {
				unknown = append(unknown, area)
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("catalog: content keyed by unknown areas: %s", strings.Join(unknown, ", "))
	}

	seen := make(map[int]bool, len(c.QuizQuestions))
	for _, q := range c.QuizQuestions {
		if seen[q.ID] {
			return fmt.Errorf("catalog: duplicate quiz question %d", q.ID)
		}
		seen[q.ID] = true
		if q.Categories.Agree == "" || q.Categories.Disagree == "" {
			return fmt.Errorf("catalog: quiz question %d is missing a category", q.ID)
		}
	}
	return nil
}

func keysOf[T any](m map[string][]T) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = len(v)
	}
	return out
}

func nonNilMap[T any](m map[string][]T) map[string][]T {
	if m == nil {
		return map[string][]T{}
	}
	return m
}
