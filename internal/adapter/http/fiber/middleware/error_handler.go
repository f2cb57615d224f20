package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		switch {
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrForbidden):
			code = fiber.StatusForbidden
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrEmailNotConfirmed):
			code = fiber.StatusUnauthorized
		case errors.Is(err, domain.ErrInvalidFileType), errors.Is(err, domain.ErrFileTooLarge),
			errors.Is(err, domain.ErrInvalidURL), errors.Is(err, domain.ErrInvalidStatus):
			code = fiber.StatusBadRequest
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
