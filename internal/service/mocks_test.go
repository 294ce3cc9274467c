package service

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/repository"

	"github.com/stretchr/testify/mock"
)

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Session), args.Error(1)
}

// --- MockFeedbackRepository ---
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// newTestCatalog builds a small catalog repository shared by service tests.
func newTestCatalog() domain.CatalogRepository {
	return repository.NewCatalogRepository(&domain.Catalog{
		Areas: []domain.CareerArea{{ID: "engineering"}, {ID: "medical"}, {ID: "law"}},
		Questions: map[string][]domain.Question{
			"engineering": {{ID: "eng-q1"}, {ID: "eng-q2"}, {ID: "eng-q3"}},
			"medical":     {{ID: "med-q1"}, {ID: "med-q2"}, {ID: "med-q3"}},
			"law":         {{ID: "law-q1"}, {ID: "law-q2"}},
		},
		Courses: map[string][]domain.Course{
			"engineering": {{ID: "btech-cse"}, {ID: "btech-mech"}},
			"medical":     {{ID: "mbbs"}},
		},
		Exams: map[string][]domain.Exam{
			"engineering": {{ID: "jee-main"}},
			"law":         {{ID: "clat"}},
		},
		Resources: domain.Resources{
			Exams: []domain.ResourceExam{
				{ID: "jee-main", ForStreams: []string{"science"}},
				{ID: "cuet-ug", ForStreams: []string{"science", "commerce", "arts"}},
				{ID: "ca-foundation", ForStreams: []string{"commerce"}},
			},
			Scholarships: []domain.Scholarship{{ID: "nsp"}},
			Colleges:     []domain.College{{ID: "iits"}},
		},
		QuizQuestions: []domain.QuizQuestion{{ID: 1, Categories: domain.QuizCategories{Agree: "Science", Disagree: "Arts"}}},
		Streams:       []domain.Stream{{ID: "science"}},
	})
}
