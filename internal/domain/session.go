package domain

import (
	"strings"
	"time"
)

// SessionDraft is what the explore flow submits before an id is assigned.
type SessionDraft struct {
	StudentName      string            `json:"studentName,omitempty"`
	Grade            string            `json:"grade"`
	Interests        []string          `json:"interests"`
	SelectedAreas    []string          `json:"selectedAreas"`
	Answers          map[string]string `json:"answers"`
	SuggestedCourses []Course          `json:"suggestedCourses"`
	SuggestedExams   []Exam            `json:"suggestedExams"`
}

// Session is a persisted exploration record. It is never modified after
// creation.
type Session struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionDraft
}

// NewSession stamps a draft with its identity. Nil collections are
// normalised to empty ones so stored records always carry arrays/objects.
func NewSession(id string, createdAt time.Time, draft SessionDraft) *Session {
	draft.StudentName = strings.TrimSpace(draft.StudentName)
	if draft.Interests == nil {
		draft.Interests = []string{}
	}
	if draft.SelectedAreas == nil {
		draft.SelectedAreas = []string{}
	}
	if draft.Answers == nil {
		draft.Answers = map[string]string{}
	}
	if draft.SuggestedCourses == nil {
		draft.SuggestedCourses = []Course{}
	}
	if draft.SuggestedExams == nil {
		draft.SuggestedExams = []Exam{}
	}
	return &Session{
		ID:           id,
		Timestamp:    createdAt.UTC(),
		SessionDraft: draft,
	}
}

// Grades offered on the details step.
var Grades = []string{"Class 10", "Class 11", "Class 12", "12th Pass", "Graduated"}

// InterestOptions offered on the details step.
var InterestOptions = []string{
	"Science & Experiments",
	"Mathematics & Logic",
	"Computers & Technology",
	"Business & Money",
	"Art & Creativity",
	"Reading & Writing",
	"Helping People",
	"Building Things",
	"Music & Performance",
	"Sports & Fitness",
}
