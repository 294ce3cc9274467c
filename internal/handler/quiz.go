package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const invalidAnswersMessage = "Invalid request: answers array required"

// QuizHandler scores quiz submissions.
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// SubmitQuiz godoc
// @Summary Score a quiz
// @Description Tallies answer categories and recommends the most chosen stream
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizSubmitRequest true "Quiz answers"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Unparseable quiz submission", zap.Error(err))
		return domain.NewInvalidInputError(invalidAnswersMessage)
	}
	if req.Answers == nil {
		return domain.NewInvalidInputError(invalidAnswersMessage)
	}

	result, err := h.service.Submit(*req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
