package handler

import (
	"cs-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API routes on app.
func RegisterRoutes(app *fiber.App, dailySet *DailySetHandler, health *HealthHandler) {
	validation := middleware.NewValidationMiddleware()

	app.Get("/health", health.Health)

	apiGroup := app.Group("/api")
	apiGroup.Get("/daily-set", validation.ValidateDateQuery(), dailySet.GetDailySet)
	apiGroup.Get("/daily-set/questions", validation.ValidateDateQuery(), dailySet.GetDailyQuestions)
}
