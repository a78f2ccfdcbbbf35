package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/unlock", handler.Unlock)
	api.Post("/lock", handler.Lock)

	protected := api.Group("", handler.LockRequired)

	protected.Put("/settings/passcode", handler.SetPasscode)
	protected.Delete("/settings/passcode", handler.RemovePasscode)

	protected.Get("/profile", handler.GetProfile)
	protected.Put("/profile", handler.CompleteOnboarding)
	protected.Post("/profile/score", handler.RecomputeScore)

	protected.Get("/periods", handler.ListPeriods)
	protected.Post("/periods", handler.LogPeriod)

	protected.Get("/symptoms", handler.ListSymptoms)
	protected.Post("/symptoms", handler.LogSymptom)

	protected.Get("/conditions", handler.ListConditions)
	protected.Post("/conditions", handler.LogCondition)
	protected.Get("/conditions/detected", handler.DetectedConditions)

	protected.Get("/phase", handler.GetPhase)
	protected.Get("/prediction", handler.GetPrediction)
	protected.Get("/organ-health", handler.GetOrganHealth)
	protected.Get("/insights", handler.GetInsights)

	protected.Get("/export", handler.Export)
	protected.Delete("/data", handler.ClearAllData)
}
