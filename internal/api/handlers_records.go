package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gloww/internal/services"
)

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	periods, err := handler.wellness.Periods()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	result := make([]periodResponse, 0, len(periods))
	for _, period := range periods {
		result = append(result, toPeriodResponse(period))
	}
	return c.JSON(result)
}

func (handler *Handler) LogPeriod(c *fiber.Ctx) error {
	var payload periodPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidInput)
	}

	record, err := handler.wellness.LogPeriod(services.PeriodInput{
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Flow:      payload.Flow,
		Symptoms:  payload.Symptoms,
		PainLevel: payload.PainLevel,
		Mood:      payload.Mood,
	}, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPeriodResponse(record))
}

// ListSymptoms returns events from the last ?days= days, defaulting to the
// configured scoring window.
func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	days := c.QueryInt("days", 0)
	if days < 0 {
		return apiError(c, fiber.StatusBadRequest, errInvalidDaysFilter)
	}

	events, err := handler.wellness.RecentSymptoms(days, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	result := make([]symptomResponse, 0, len(events))
	for _, event := range events {
		result = append(result, toSymptomResponse(event))
	}
	return c.JSON(result)
}

func (handler *Handler) LogSymptom(c *fiber.Ctx) error {
	var payload symptomPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidInput)
	}

	event, err := handler.wellness.LogSymptom(services.SymptomInput{
		Type:     payload.Type,
		Severity: payload.Severity,
		Date:     payload.Date,
		Note:     payload.Note,
	}, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSymptomResponse(event))
}

func (handler *Handler) ListConditions(c *fiber.Ctx) error {
	entries, err := handler.wellness.Conditions()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	result := make([]conditionResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toConditionResponse(entry))
	}
	return c.JSON(result)
}

func (handler *Handler) LogCondition(c *fiber.Ctx) error {
	var payload conditionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidInput)
	}

	entry, err := handler.wellness.LogCondition(services.ConditionInput{
		Condition: payload.Condition,
		Status:    payload.Status,
		IsNew:     payload.IsNew,
		Date:      payload.Date,
	}, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toConditionResponse(entry))
}
