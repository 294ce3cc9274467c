package handler

import (
	"career-compass/internal/dto"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the read-only catalogs.
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler creates a new ContentHandler instance
func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// GetAreas godoc
// @Summary List career areas
// @Description Returns every career area in display order
// @Tags content
// @Produce json
// @Success 200 {object} dto.AreasResponse
// @Router /areas [get]
func (h *ContentHandler) GetAreas(c *fiber.Ctx) error {
	return c.JSON(dto.AreasResponse{Areas: h.service.Areas()})
}

// GetQuestions godoc
// @Summary List area questions
// @Description Returns the questions of one area, or all questions keyed by area id
// @Tags content
// @Produce json
// @Param area query string false "Career area id"
// @Success 200 {object} dto.QuestionsResponse
// @Router /questions [get]
func (h *ContentHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(dto.QuestionsResponse{Questions: h.service.Questions(c.Query("area"))})
}

// GetCourses godoc
// @Summary List courses
// @Description Returns the courses of one area, or all courses keyed by area id
// @Tags content
// @Produce json
// @Param area query string false "Career area id"
// @Success 200 {object} dto.CoursesResponse
// @Router /courses [get]
func (h *ContentHandler) GetCourses(c *fiber.Ctx) error {
	return c.JSON(dto.CoursesResponse{Courses: h.service.Courses(c.Query("area"))})
}

// GetExams godoc
// @Summary List entrance exams
// @Description Returns the exams of one area, or all exams keyed by area id
// @Tags content
// @Produce json
// @Param area query string false "Career area id"
// @Success 200 {object} dto.ExamsResponse
// @Router /exams [get]
func (h *ContentHandler) GetExams(c *fiber.Ctx) error {
	return c.JSON(dto.ExamsResponse{Exams: h.service.Exams(c.Query("area"))})
}

// GetResources godoc
// @Summary List resources
// @Description Exams, scholarships and colleges. stream filters exams; type selects one section.
// @Tags content
// @Produce json
// @Param stream query string false "Stream id"
// @Param type query string false "exams, scholarships or colleges"
// @Success 200 {object} dto.ResourcesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /resources [get]
func (h *ContentHandler) GetResources(c *fiber.Ctx) error {
	var q dto.ResourcesQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	return c.JSON(h.service.Resources(q.Stream, q.Type))
}

// GetQuizQuestions godoc
// @Summary List quiz questions
// @Description Returns the stream aptitude quiz
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizQuestionsResponse
// @Router /quiz [get]
func (h *ContentHandler) GetQuizQuestions(c *fiber.Ctx) error {
	return c.JSON(dto.QuizQuestionsResponse{Questions: h.service.QuizQuestions()})
}

// GetStreams godoc
// @Summary List streams
// @Description Returns the academic streams with their courses
// @Tags content
// @Produce json
// @Success 200 {object} dto.StreamsResponse
// @Router /streams [get]
func (h *ContentHandler) GetStreams(c *fiber.Ctx) error {
	return c.JSON(dto.StreamsResponse{Streams: h.service.Streams()})
}
