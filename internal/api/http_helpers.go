package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gloww/internal/services"
	"go.uber.org/zap"
)

const (
	errInvalidInput      = "invalid input"
	errInternal          = "internal error"
	errLocked            = "locked"
	errTooManyAttempts   = "too many attempts"
	errProfileNotFound   = "profile not found"
	errInvalidDaysFilter = "days must be a positive number"
)

var badRequestErrors = []error{
	services.ErrInvalidDate,
	services.ErrInvalidPeriodRange,
	services.ErrInvalidPainLevel,
	services.ErrInvalidFlow,
	services.ErrInvalidSeverity,
	services.ErrInvalidConditionStatus,
	services.ErrInvalidSymptomType,
	services.ErrInvalidCondition,
	services.ErrInvalidPasscode,
	services.ErrPasscodeNotSet,
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service errors to status codes. Anything
// unrecognised is logged and hidden behind a generic 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return apiError(c, fiber.StatusBadRequest, target.Error())
		}
	}

	switch {
	case errors.Is(err, services.ErrInsufficientData):
		return apiError(c, fiber.StatusUnprocessableEntity, services.ErrInsufficientData.Error())
	case errors.Is(err, services.ErrNoPeriodHistory):
		return apiError(c, fiber.StatusUnprocessableEntity, services.ErrNoPeriodHistory.Error())
	case errors.Is(err, services.ErrProfileNotFound):
		return apiError(c, fiber.StatusNotFound, errProfileNotFound)
	default:
		handler.logger.Error("request failed", zapPath(c), zapError(err))
		return apiError(c, fiber.StatusInternalServerError, errInternal)
	}
}

func zapPath(c *fiber.Ctx) zap.Field {
	return zap.String("path", c.Path())
}

func zapError(err error) zap.Field {
	return zap.Error(err)
}
