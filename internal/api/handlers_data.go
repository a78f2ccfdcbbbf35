package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Export(c *fiber.Ctx) error {
	now := handler.today()
	bundle, err := handler.wellness.Export(now)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"gloww-export-%s.json\"", now.Format("2006-01-02")))
	return c.JSON(bundle)
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	if err := handler.wellness.ResetAllData(); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.logger.Info("all data cleared")
	return c.JSON(fiber.Map{"ok": true})
}
