package service

import (
	"career-compass/internal/domain"
	"career-compass/internal/logger"

	"go.uber.org/zap"
)

// QuizService scores stream-aptitude quiz submissions.
type QuizService interface {
	Questions() []domain.QuizQuestion
	Submit(answers []domain.Answer) (*domain.RecommendationResult, error)
}

type quizService struct {
	repo domain.CatalogRepository
}

func NewQuizService(repo domain.CatalogRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) Questions() []domain.QuizQuestion {
	return s.repo.QuizQuestions()
}

// Submit rejects an empty submission; anything else is scored.
func (s *quizService) Submit(answers []domain.Answer) (*domain.RecommendationResult, error) {
	if len(answers) == 0 {
		return nil, domain.NewInvalidInputError("Invalid request: at least one answer required")
	}

	result := domain.Score(answers)
	logger.Get().Debug("Quiz scored",
		zap.Int("answers", len(answers)),
		zap.Int("counted", sumCounts(result.Breakdown)),
		zap.String("recommendation", result.Recommendation))
	return result, nil
}

func sumCounts(t *domain.Tally) int {
	total := 0
	for _, c := range t.Categories() {
		total += t.Count(c)
	}
	return total
}
