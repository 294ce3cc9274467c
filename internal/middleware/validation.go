package middleware

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const ValidatedAreasKey = "validated_areas"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateAreaSelection parses an area selection body and stores the
// validated ids in locals.
func (vm *ValidationMiddleware) ValidateAreaSelection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AreaSelectionRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if errors := vm.validator.ValidateAreaSelection(req.SelectedAreas); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedAreasKey, req.SelectedAreas)
		return c.Next()
	}
}

// ValidateNarrationQuery bounds the text query parameter.
func (vm *ValidationMiddleware) ValidateNarrationQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateNarrationText(c.Query("text")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidatedAreas returns the selection stored by ValidateAreaSelection.
func ValidatedAreas(c *fiber.Ctx) []string {
	areas, _ := c.Locals(ValidatedAreasKey).([]string)
	return areas
}
