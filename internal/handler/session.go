package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// SaveSession godoc
// @Summary Save a session
// @Description Stores a finished exploration and returns its id
// @Tags session
// @Accept json
// @Produce json
// @Param request body domain.SessionDraft true "Session draft"
// @Success 200 {object} dto.SaveSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /session [post]
func (h *SessionHandler) SaveSession(c *fiber.Ctx) error {
	var draft domain.SessionDraft
	if err := c.BodyParser(&draft); err != nil {
		logger.Get().Debug("Unparseable session body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}

	session, err := h.service.Save(c.UserContext(), draft)
	if err != nil {
		return err
	}
	return c.JSON(dto.SaveSessionResponse{
		Success:   true,
		SessionID: session.ID,
		Message:   dto.SessionSavedMessage,
	})
}

// ListSessions godoc
// @Summary List sessions
// @Description Returns every stored session, newest first
// @Tags session
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.SessionsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /session [get]
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionsResponse{Sessions: sessions})
}

// GetSession godoc
// @Summary Get a session
// @Tags session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /session/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionResponse{Session: session})
}
