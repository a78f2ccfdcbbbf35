package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger writes one structured line per request.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(started)),
			zap.String("ip", c.IP()),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
		return err
	}
}

// LockRequired lets requests through while no passcode is set; otherwise it
// demands a valid session cookie.
func (handler *Handler) LockRequired(c *fiber.Ctx) error {
	enabled, err := handler.lock.Enabled()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !enabled {
		return c.Next()
	}
	if err := handler.authenticateSession(c); err != nil {
		return apiError(c, fiber.StatusUnauthorized, errLocked)
	}
	return c.Next()
}
