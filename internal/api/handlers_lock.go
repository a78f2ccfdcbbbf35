package api

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gloww/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Unlock(c *fiber.Ctx) error {
	key := clientKey(c)
	now := handler.now()
	if wait := handler.unlockLimiter.blockedFor(key, now); wait > 0 {
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		return apiError(c, fiber.StatusTooManyRequests, errTooManyAttempts)
	}

	var payload passcodePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidInput)
	}

	if err := handler.lock.Verify(payload.Passcode); err != nil {
		if errors.Is(err, services.ErrPasscodeMismatch) {
			handler.unlockLimiter.fail(key, now)
			handler.logger.Warn("unlock failed", zapPath(c))
			return apiError(c, fiber.StatusUnauthorized, services.ErrPasscodeMismatch.Error())
		}
		return handler.respondServiceError(c, err)
	}

	handler.unlockLimiter.reset(key)
	if err := handler.setSessionCookie(c); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Lock(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// SetPasscode enables or changes the lock and keeps the caller unlocked.
func (handler *Handler) SetPasscode(c *fiber.Ctx) error {
	var payload passcodePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidInput)
	}
	if err := handler.lock.SetPasscode(payload.Passcode); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.setSessionCookie(c); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "locked": true})
}

func (handler *Handler) RemovePasscode(c *fiber.Ctx) error {
	if err := handler.lock.RemovePasscode(); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true, "locked": false})
}
