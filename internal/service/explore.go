package service

import (
	"context"
	"strings"

	"career-compass/internal/domain"
	"career-compass/internal/logger"
	"career-compass/internal/validation"

	"go.uber.org/zap"
)

// ExploreService drives the Details, Areas, Questions, Results wizard.
type ExploreService interface {
	Steps() []domain.ExploreStep
	ValidateProfile(grade string, interests []string) error
	Questions(selectedAreas []string) ([]domain.AreaQuestion, error)
	Results(ctx context.Context, selectedAreas []string) ([]domain.Course, []domain.Exam, error)
	Complete(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error)
}

type exploreService struct {
	catalog   domain.CatalogRepository
	sessions  SessionService
	validator *validation.Validator
}

func NewExploreService(catalog domain.CatalogRepository, sessions SessionService) ExploreService {
	return &exploreService{catalog: catalog, sessions: sessions, validator: validation.NewValidator()}
}

func (s *exploreService) Steps() []domain.ExploreStep {
	return domain.ExploreSteps
}

// ValidateProfile requires a grade and at least one known interest.
func (s *exploreService) ValidateProfile(grade string, interests []string) error {
	var errs domain.ValidationErrors
	if strings.TrimSpace(grade) == "" {
		errs = append(errs, domain.NewMissingFieldError("grade"))
	}
	if len(interests) == 0 {
		errs = append(errs, domain.NewMissingFieldError("interests"))
	}
	for _, interest := range interests {
		if !containsString(domain.InterestOptions, interest) {
			errs = append(errs, domain.NewInvalidFormatError("interests", interest))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *exploreService) validateAreas(selectedAreas []string) error {
	if errs := s.validator.ValidateAreaSelection(selectedAreas); len(errs) > 0 {
		return errs
	}
	return nil
}

// Questions takes up to MaxQuestionsPerArea from each area in selection
// order, stopping at MaxExploreQuestions.
func (s *exploreService) Questions(selectedAreas []string) ([]domain.AreaQuestion, error) {
	if err := s.validateAreas(selectedAreas); err != nil {
		return nil, err
	}

	out := make([]domain.AreaQuestion, 0, domain.MaxExploreQuestions)
	for _, areaID := range selectedAreas {
		questions := s.catalog.QuestionsByArea(areaID)
		if len(questions) > domain.MaxQuestionsPerArea {
			questions = questions[:domain.MaxQuestionsPerArea]
		}
		for _, q := range questions {
			if len(out) == domain.MaxExploreQuestions {
				return out, nil
			}
			out = append(out, domain.AreaQuestion{AreaID: areaID, Question: q})
		}
	}
	return out, nil
}

// Results concatenates the courses and exams of every area in selection
// order.
func (s *exploreService) Results(ctx context.Context, selectedAreas []string) ([]domain.Course, []domain.Exam, error) {
	if err := s.validateAreas(selectedAreas); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	courses := make([]domain.Course, 0)
	exams := make([]domain.Exam, 0)
	for _, areaID := range selectedAreas {
		courses = append(courses, s.catalog.CoursesByArea(areaID)...)
		exams = append(exams, s.catalog.ExamsByArea(areaID)...)
	}
	return courses, exams, nil
}

// Complete validates the finished wizard, fills suggestions the client did
// not send, and stores the session.
func (s *exploreService) Complete(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error) {
	var errs domain.ValidationErrors
	if err := s.ValidateProfile(draft.Grade, draft.Interests); err != nil {
		errs = append(errs, err.(domain.ValidationErrors)...)
	}
	if err := s.validateAreas(draft.SelectedAreas); err != nil {
		errs = append(errs, err.(domain.ValidationErrors)...)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if len(draft.SuggestedCourses) == 0 && len(draft.SuggestedExams) == 0 {
		courses, exams, err := s.Results(ctx, draft.SelectedAreas)
		if err != nil {
			return nil, err
		}
		draft.SuggestedCourses = courses
		draft.SuggestedExams = exams
	}

	session, err := s.sessions.Save(ctx, draft)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Exploration completed",
		zap.String("session_id", session.ID),
		zap.Strings("areas", session.SelectedAreas))
	return session, nil
}
