package handler

import (
	"career-compass/internal/middleware"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes.
type Handlers struct {
	Content   *ContentHandler
	Quiz      *QuizHandler
	Session   *SessionHandler
	Explore   *ExploreHandler
	Feedback  *FeedbackHandler
	Narration *NarrationHandler
	Health    *HealthHandler
}

// RegisterRoutes mounts the API under /api. A nil authService leaves the
// listing endpoints open.
func RegisterRoutes(app *fiber.App, h Handlers, authService service.AuthService) {
	adminOnly := middleware.AdminOnly(authService)
	validator := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)

	api := app.Group("/api")

	// Content catalogs
	api.Get("/areas", h.Content.GetAreas)
	api.Get("/questions", h.Content.GetQuestions)
	api.Get("/courses", h.Content.GetCourses)
	api.Get("/exams", h.Content.GetExams)
	api.Get("/resources", h.Content.GetResources)
	api.Get("/streams", h.Content.GetStreams)

	// Quiz
	api.Get("/quiz", h.Content.GetQuizQuestions)
	api.Post("/quiz/submit", h.Quiz.SubmitQuiz)

	// Sessions
	api.Post("/session", h.Session.SaveSession)
	api.Get("/session", adminOnly, h.Session.ListSessions)
	api.Get("/session/:id", h.Session.GetSession)

	// Guided exploration
	explore := api.Group("/explore")
	explore.Get("/steps", h.Explore.GetSteps)
	explore.Post("/profile", h.Explore.ValidateProfile)
	explore.Post("/questions", validator.ValidateAreaSelection(), h.Explore.GetQuestions)
	explore.Post("/results", validator.ValidateAreaSelection(), h.Explore.GetResults)
	explore.Post("/complete", h.Explore.Complete)

	// Feedback
	api.Post("/feedback", h.Feedback.SubmitFeedback)
	api.Get("/feedback", h.Feedback.GetFeedbackCount)
	api.Get("/feedback/entries", adminOnly, h.Feedback.ListFeedback)

	// Narration
	api.Get("/languages", h.Narration.GetLanguages)
	api.Get("/audio", validator.ValidateNarrationQuery(), h.Narration.GetAudio)
}
