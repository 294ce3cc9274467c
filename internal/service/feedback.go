package service

import (
	"context"

	"career-compass/internal/domain"
	"career-compass/internal/logger"
	"career-compass/internal/util"

	"go.uber.org/zap"
)

// FeedbackService validates and stores feedback.
type FeedbackService interface {
	Submit(ctx context.Context, name, message string, rating int) (*domain.Feedback, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
}

type feedbackService struct {
	repo domain.FeedbackRepository
}

func NewFeedbackService(repo domain.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, name, message string, rating int) (*domain.Feedback, error) {
	feedback := domain.NewFeedback(util.NewULID(), name, message, rating)
	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		logger.Get().Error("Failed to store feedback", zap.Error(err))
		return nil, domain.NewInternalError("Failed to submit feedback", err)
	}
	logger.Get().Info("Feedback received", zap.String("feedback_id", feedback.ID), zap.Int("rating", feedback.Rating))
	return feedback, nil
}

func (s *feedbackService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, domain.NewInternalError("Failed to count feedback", err)
	}
	return n, nil
}

func (s *feedbackService) List(ctx context.Context) ([]*domain.Feedback, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list feedback", err)
	}
	return list, nil
}
