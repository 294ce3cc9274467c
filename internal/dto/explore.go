package dto

import "career-compass/internal/domain"

type ExploreStepsResponse struct {
	Steps     []domain.ExploreStep `json:"steps"`
	Grades    []string             `json:"grades"`
	Interests []string             `json:"interests"`
}

// ProfileRequest is the details step.
// @Description Student details
type ProfileRequest struct {
	StudentName string   `json:"studentName"`
	Grade       string   `json:"grade"`
	Interests   []string `json:"interests"`
}

type ProfileResponse struct {
	Valid bool `json:"valid"`
}

// AreaSelectionRequest is the areas step.
// @Description Selected career areas
type AreaSelectionRequest struct {
	SelectedAreas []string `json:"selectedAreas"`
}

type ExploreQuestionsResponse struct {
	Questions []domain.AreaQuestion `json:"questions"`
}

type ExploreResultsResponse struct {
	Courses []domain.Course `json:"courses"`
	Exams   []domain.Exam   `json:"exams"`
}

// CompleteResponse acknowledges a finished exploration.
type CompleteResponse struct {
	SaveSessionResponse
	Session *domain.Session `json:"session"`
}
