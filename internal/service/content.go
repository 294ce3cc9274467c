package service

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
)

// Resource types accepted by the resources filter.
const (
	ResourceTypeExams        = "exams"
	ResourceTypeScholarships = "scholarships"
	ResourceTypeColleges     = "colleges"
)

// ContentService serves the read-only catalogs. Filters fail open: an
// unknown key yields an empty list, never an error.
type ContentService interface {
	Areas() []domain.CareerArea
	Questions(areaID string) interface{}
	Courses(areaID string) interface{}
	Exams(areaID string) interface{}
	Resources(stream, resourceType string) *dto.ResourcesResponse
	QuizQuestions() []domain.QuizQuestion
	Streams() []domain.Stream
}

type contentService struct {
	repo domain.CatalogRepository
}

func NewContentService(repo domain.CatalogRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) Areas() []domain.CareerArea {
	return s.repo.Areas()
}

// Questions returns the area's list, or every area's questions keyed by
// area id when no area is given.
func (s *contentService) Questions(areaID string) interface{} {
	if areaID == "" {
		return s.repo.AllQuestions()
	}
	return s.repo.QuestionsByArea(areaID)
}

func (s *contentService) Courses(areaID string) interface{} {
	if areaID == "" {
		return s.repo.AllCourses()
	}
	return s.repo.CoursesByArea(areaID)
}

func (s *contentService) Exams(areaID string) interface{} {
	if areaID == "" {
		return s.repo.AllExams()
	}
	return s.repo.ExamsByArea(areaID)
}

// Resources narrows exams to those listing stream, then selects one section
// by type. An unrecognised type returns every section.
func (s *contentService) Resources(stream, resourceType string) *dto.ResourcesResponse {
	all := s.repo.Resources()

	exams := all.Exams
	if stream != "" {
		exams = make([]domain.ResourceExam, 0, len(all.Exams))
		for _, e := range all.Exams {
			if containsString(e.ForStreams, stream) {
				exams = append(exams, e)
			}
		}
	}

	switch resourceType {
	case ResourceTypeExams:
		return &dto.ResourcesResponse{Exams: &exams}
	case ResourceTypeScholarships:
		return &dto.ResourcesResponse{Scholarships: &all.Scholarships}
	case ResourceTypeColleges:
		return &dto.ResourcesResponse{Colleges: &all.Colleges}
	default:
		return &dto.ResourcesResponse{
			Exams:        &exams,
			Scholarships: &all.Scholarships,
			Colleges:     &all.Colleges,
		}
	}
}

func (s *contentService) QuizQuestions() []domain.QuizQuestion {
	return s.repo.QuizQuestions()
}

func (s *contentService) Streams() []domain.Stream {
	return s.repo.Streams()
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
