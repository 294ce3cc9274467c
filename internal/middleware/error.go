package middleware

import (
	"errors"
	"net/http"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized fiber error handler. 5xx responses never
// expose the underlying cause.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("request_id", RequestID(c)),
		)

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				ErrorResponse: dto.ErrorResponse{
					Code:   string(domain.CodeValidation),
					Error:  validationMessage(validationErrs),
					Status: http.StatusBadRequest,
				},
				Errors: validationErrs,
			})
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Info("Request rejected", fields...)
			}

			response := dto.ErrorResponse{
				Code:   string(domainErr.Code),
				Error:  domainErr.Message,
				Status: statusCode,
			}
			if len(domainErr.Context) > 0 && statusCode < http.StatusInternalServerError {
				response.Details = domainErr.Context
			}
			return c.Status(statusCode).JSON(response)
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred", zap.Int("code", fiberErr.Code), zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Code:   "HTTP_ERROR",
				Error:  fiberErr.Message,
				Status: fiberErr.Code,
			})
		}

		// Handle unknown errors
		log.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:   string(domain.CodeInternal),
			Error:  "Internal server error",
			Status: http.StatusInternalServerError,
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeSessionNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeUnsupportedLanguage,
		domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage surfaces the first field problem as the headline.
func validationMessage(errs domain.ValidationErrors) string {
	if len(errs) == 0 {
		return "Request validation failed"
	}
	return errs[0].Message
}
