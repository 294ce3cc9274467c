package domain

import "context"

// CatalogRepository reads the content store. Unknown keys yield empty
// results, never errors.
type CatalogRepository interface {
	Areas() []CareerArea
	AreaExists(areaID string) bool
	AllQuestions() map[string][]Question
	QuestionsByArea(areaID string) []Question
	AllCourses() map[string][]Course
	CoursesByArea(areaID string) []Course
	AllExams() map[string][]Exam
	ExamsByArea(areaID string) []Exam
	Resources() Resources
	QuizQuestions() []QuizQuestion
	Streams() []Stream
}

// SessionRepository persists exploration sessions.
type SessionRepository interface {
	// Create assigns id and timestamp and persists the record.
	Create(ctx context.Context, draft SessionDraft) (*Session, error)
	// GetByID returns a not-found DomainError for absent or malformed ids.
	GetByID(ctx context.Context, id string) (*Session, error)
	// List returns every readable session, newest first.
	List(ctx context.Context) ([]*Session, error)
}

// FeedbackRepository persists feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *Feedback) error
	Count(ctx context.Context) (int, error)
	// List returns every record, newest first.
	List(ctx context.Context) ([]*Feedback, error)
}
