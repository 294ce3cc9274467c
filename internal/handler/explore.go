package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/middleware"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExploreHandler exposes the guided exploration wizard.
type ExploreHandler struct {
	service service.ExploreService
}

func NewExploreHandler(service service.ExploreService) *ExploreHandler {
	return &ExploreHandler{service: service}
}

// GetSteps godoc
// @Summary Wizard steps
// @Description Steps with narration prompts, plus the grade and interest options
// @Tags explore
// @Produce json
// @Success 200 {object} dto.ExploreStepsResponse
// @Router /explore/steps [get]
func (h *ExploreHandler) GetSteps(c *fiber.Ctx) error {
	return c.JSON(dto.ExploreStepsResponse{
		Steps:     h.service.Steps(),
		Grades:    domain.Grades,
		Interests: domain.InterestOptions,
	})
}

// ValidateProfile godoc
// @Summary Check the details step
// @Tags explore
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Student details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /explore/profile [post]
func (h *ExploreHandler) ValidateProfile(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.service.ValidateProfile(req.Grade, req.Interests); err != nil {
		return err
	}
	return c.JSON(dto.ProfileResponse{Valid: true})
}

// GetQuestions godoc
// @Summary Questions for the selected areas
// @Description Up to two questions per area, five in total
// @Tags explore
// @Accept json
// @Produce json
// @Param request body dto.AreaSelectionRequest true "Selected areas"
// @Success 200 {object} dto.ExploreQuestionsResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /explore/questions [post]
func (h *ExploreHandler) GetQuestions(c *fiber.Ctx) error {
	questions, err := h.service.Questions(middleware.ValidatedAreas(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.ExploreQuestionsResponse{Questions: questions})
}

// GetResults godoc
// @Summary Suggestions for the selected areas
// @Description Courses and exams of every selected area, in selection order
// @Tags explore
// @Accept json
// @Produce json
// @Param request body dto.AreaSelectionRequest true "Selected areas"
// @Success 200 {object} dto.ExploreResultsResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /explore/results [post]
func (h *ExploreHandler) GetResults(c *fiber.Ctx) error {
	courses, exams, err := h.service.Results(c.UserContext(), middleware.ValidatedAreas(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.ExploreResultsResponse{Courses: courses, Exams: exams})
}

// Complete godoc
// @Summary Finish the wizard
// @Description Validates the whole draft, fills missing suggestions and saves the session
// @Tags explore
// @Accept json
// @Produce json
// @Param request body domain.SessionDraft true "Session draft"
// @Success 200 {object} dto.CompleteResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /explore/complete [post]
func (h *ExploreHandler) Complete(c *fiber.Ctx) error {
	var draft domain.SessionDraft
	if err := c.BodyParser(&draft); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	session, err := h.service.Complete(c.UserContext(), draft)
	if err != nil {
		return err
	}
	return c.JSON(dto.CompleteResponse{
		SaveSessionResponse: dto.SaveSessionResponse{
			Success:   true,
			SessionID: session.ID,
			Message:   dto.SessionSavedMessage,
		},
		Session: session,
	})
}
