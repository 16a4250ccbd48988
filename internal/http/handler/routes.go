package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/WarBros01113/Real-SurvEase/internal/service"
)

// Services bundles the use-case interfaces the HTTP layer depends on.
type Services struct {
	Surveys     service.SurveyService
	Responses   service.ResponseService
	Leaderboard service.LeaderboardService
	Profiles    service.ProfileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers are
// thin request/response adapters; all business logic lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/surveys", ListSurveys(svcs.Surveys))
	app.Post("/surveys", PostSurvey(svcs.Surveys))
	app.Get("/surveys/:id", GetSurvey(svcs.Surveys))
	app.Delete("/surveys/:id", DeleteSurvey(svcs.Surveys))

	app.Get("/surveys/:id/responses", ListResponses(svcs.Responses))
	app.Post("/surveys/:id/responses", FillSurvey(svcs.Responses))

	app.Get("/leaderboard", Leaderboard(svcs.Leaderboard))

	app.Get("/users/:id", GetProfile(svcs.Profiles))
	app.Put("/users/:id", UpsertProfile(svcs.Profiles))
	app.Post("/users/:id/avatar", UploadAvatar(svcs.Profiles))
	app.Get("/users/:id/avatar", Avatar(svcs.Profiles))
	app.Get("/users/:id/avatar-url", AvatarURL(svcs.Profiles))
}
