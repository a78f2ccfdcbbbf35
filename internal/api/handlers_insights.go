package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) DetectedConditions(c *fiber.Ctx) error {
	labels, err := handler.wellness.DetectedConditions()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"conditions": stringsOrEmpty(labels)})
}

func (handler *Handler) GetPhase(c *fiber.Ctx) error {
	phase, err := handler.wellness.CurrentPhase(handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(toPhaseResponse(phase))
}

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	prediction, err := handler.wellness.Prediction(handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(toPredictionResponse(prediction))
}

func (handler *Handler) GetOrganHealth(c *fiber.Ctx) error {
	organs, err := handler.wellness.OrganHealth()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(toOrganResponses(organs))
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	insights, err := handler.wellness.Insights(handler.today())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	response := insightsResponse{
		Onboarded:          insights.Onboarded,
		Score:              insights.Score,
		PhaseError:         insights.PhaseError,
		PredictionError:    insights.PredictionError,
		DetectedConditions: stringsOrEmpty(insights.DetectedConditions),
		OrganHealth:        toOrganResponses(insights.OrganHealth),
	}
	if insights.Phase != nil {
		phase := toPhaseResponse(*insights.Phase)
		response.Phase = &phase
	}
	if insights.Prediction != nil {
		prediction := toPredictionResponse(*insights.Prediction)
		response.Prediction = &prediction
	}
	return c.JSON(response)
}
