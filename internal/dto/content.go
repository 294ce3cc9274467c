package dto

import "career-compass/internal/domain"

type AreasResponse struct {
	Areas []domain.CareerArea `json:"areas"`
}

// QuestionsResponse holds a list when filtered by area, or the full map
// keyed by area otherwise.
type QuestionsResponse struct {
	Questions interface{} `json:"questions"`
}

type CoursesResponse struct {
	Courses interface{} `json:"courses"`
}

type ExamsResponse struct {
	Exams interface{} `json:"exams"`
}

type StreamsResponse struct {
	Streams []domain.Stream `json:"streams"`
}

// ResourcesQuery filters the resources page.
type ResourcesQuery struct {
	Stream string `query:"stream"`
	Type   string `query:"type"`
}

// ResourcesResponse carries only the sections selected by type.
type ResourcesResponse struct {
	Exams        *[]domain.ResourceExam `json:"exams,omitempty"`
	Scholarships *[]domain.Scholarship  `json:"scholarships,omitempty"`
	Colleges     *[]domain.College      `json:"colleges,omitempty"`
}
