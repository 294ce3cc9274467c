package dto

import "career-compass/internal/domain"

// QuizSubmitRequest is the scoring request body. Answers is a pointer so a
// missing field can be told apart from an empty list.
// @Description Quiz answers to score
type QuizSubmitRequest struct {
	Answers *[]domain.Answer `json:"answers"`
}

// QuizQuestionsResponse lists the stream-aptitude quiz.
type QuizQuestionsResponse struct {
	Questions []domain.QuizQuestion `json:"questions"`
}

// RecommendationResponse is the scored quiz outcome.
// @Description Plurality recommendation with per-category breakdown
type RecommendationResponse = domain.RecommendationResult
