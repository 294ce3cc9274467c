package handler

import (
	"strings"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
)

const invalidFeedbackMessage = "Invalid request: message is required"

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(invalidFeedbackMessage)
	}
	if req.Message == nil || strings.TrimSpace(*req.Message) == "" {
		return domain.NewInvalidInputError(invalidFeedbackMessage)
	}
	rating := 0
	if req.Rating != nil {
		rating = *req.Rating
	}

	if _, err := h.service.Submit(c.UserContext(), req.Name, *req.Message, rating); err != nil {
		return err
	}
	return c.JSON(dto.FeedbackResponse{Success: true, Message: dto.FeedbackThanksMessage})
}

// GetFeedbackCount godoc
// @Summary Feedback count
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.FeedbackCountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback [get]
func (h *FeedbackHandler) GetFeedbackCount(c *fiber.Ctx) error {
	n, err := h.service.Count(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FeedbackCountResponse{FeedbackCount: n})
}

// ListFeedback godoc
// @Summary List feedback
// @Description Every stored submission, newest first
// @Tags feedback
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.FeedbackListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback/entries [get]
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	entries := make([]dto.FeedbackEntry, 0, len(list))
	for _, f := range list {
		entries = append(entries, dto.FeedbackEntry{
			ID:        f.ID,
			Name:      f.Name,
			Message:   f.Message,
			Rating:    f.Rating,
			CreatedAt: f.CreatedAt,
		})
	}
	return c.JSON(dto.FeedbackListResponse{Feedback: entries})
}
