package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
)

type NarrationHandler struct {
	service service.NarrationService
}

func NewNarrationHandler(service service.NarrationService) *NarrationHandler {
	return &NarrationHandler{service: service}
}

// GetLanguages godoc
// @Summary Narration languages
// @Tags narration
// @Produce json
// @Success 200 {object} dto.LanguagesResponse
// @Router /languages [get]
func (h *NarrationHandler) GetLanguages(c *fiber.Ctx) error {
	return c.JSON(dto.LanguagesResponse{
		Languages: h.service.Languages(),
		Default:   domain.DefaultLanguage,
	})
}

// GetAudio godoc
// @Summary Narration descriptor
// @Description Voice code and language metadata for speaking text on the client
// @Tags narration
// @Produce json
// @Param text query string true "Text to narrate"
// @Param lang query string false "Language code" default(en)
// @Success 200 {object} dto.AudioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /audio [get]
func (h *NarrationHandler) GetAudio(c *fiber.Ctx) error {
	resp, err := h.service.Describe(c.Query("text"), c.Query("lang"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
