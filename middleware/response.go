package middleware

import (
	"biztrack/models"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard response envelope
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes field-level validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// DomainErrorResponse maps a domain error to its HTTP status and writes
// the envelope with the error's message.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrInvalidAmount):
		statusCode = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		statusCode = fiber.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		statusCode = fiber.StatusForbidden
	case errors.Is(err, models.ErrInvalidTransition):
		statusCode = fiber.StatusConflict
	}
	return JsonResponse(c, statusCode, false, err.Error(), nil)
}
