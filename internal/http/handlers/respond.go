package handlers

import (
	"errors"

	"github.com/creative-studio/backend/internal/apperror"
	"github.com/creative-studio/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps a service error onto the response envelope. AppError
// messages are client-safe; anything else stays opaque.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ae *apperror.AppError
	if errors.As(err, &ae) {
		if ae.Code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("path", c.Path()),
				zap.String("type", ae.Type),
				zap.Error(err),
			)
		}
		return c.Status(ae.Code).JSON(dto.Err(ae.Message))
	}

	log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("internal error"))
}

// parseID validates a request-supplied entity id. Missing and malformed ids
// are both validation failures.
func parseID(value, field string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, apperror.NewValidation(field + " is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperror.NewValidation("invalid " + field)
	}
	return id, nil
}
