package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gloww/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.wellness.Profile()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	var payload onboardingPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidInput)
	}

	profile, err := handler.wellness.CompleteOnboarding(services.OnboardingAnswers{
		AgeBracket:  payload.AgeBracket,
		CycleLength: payload.CycleLength,
		Goals:       payload.Goals,
		Symptoms:    payload.Symptoms,
		Lifestyle:   payload.Lifestyle,
	}, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}

func (handler *Handler) RecomputeScore(c *fiber.Ctx) error {
	profile, err := handler.wellness.RecomputeScore(handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}
