package middleware

import (
	"strings"

	"career-compass/internal/domain"
	"career-compass/internal/logger"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	AdminSubjectKey     = "adminSubject" // Key for storing the token subject in fiber.Ctx locals
)

// AdminOnly requires a valid admin bearer token. A nil authService disables
// the guard.
func AdminOnly(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authService == nil {
			return c.Next()
		}

		authHeader := strings.TrimSpace(c.Get(AuthorizationHeader))
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if authHeader == strings.TrimSpace(BearerSchema) {
			return domain.NewUnauthorizedError("Token is empty")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Admin token rejected", zap.Error(err))
			return domain.NewUnauthorizedError("Invalid or expired token")
		}

		c.Locals(AdminSubjectKey, claims.Subject)
		return c.Next()
	}
}
