package routes

import (
	"github.com/Dosada05/prediction-game/handlers"
	appMiddleware "github.com/Dosada05/prediction-game/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes регистрирует все маршруты API.
// Всё, что мутирует сессию, живёт за SessionAuth; каталог, просмотр
// подтверждённых прогнозов и дашборд открыты.
func SetupRoutes(
	router *chi.Mux,
	predictionHandler *handlers.PredictionHandler,
	submissionHandler *handlers.SubmissionHandler,
	catalogHandler *handlers.CatalogHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
	sessionSecret string,
	corsOrigin string,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/catalog", func(r chi.Router) {
		r.Get("/teams", catalogHandler.ListTeams)
		r.Get("/groups", catalogHandler.ListGroups)
		r.Post("/teams/{teamID}/flag", catalogHandler.UploadFlag)
	})

	router.Post("/sessions", predictionHandler.CreateSession)

	router.Route("/sessions/current", func(r chi.Router) {
		r.Use(appMiddleware.SessionAuth([]byte(sessionSecret)))

		r.Get("/", predictionHandler.GetState)
		r.Post("/groups/{groupID}/reorder", predictionHandler.Reorder)
		r.Post("/third-place/toggle", predictionHandler.ToggleThirdPlace)
		r.Post("/bracket/seed", predictionHandler.SeedBracket)
		r.Post("/bracket/advance", predictionHandler.Advance)
		r.Post("/submit", submissionHandler.Submit)
	})

	router.Get("/submissions/{confirmationID}", submissionHandler.GetByConfirmationID)
	router.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Токен приходит query-параметром, поэтому маршрут вне группы SessionAuth.
	router.Get("/ws/sessions/{sessionID}", webSocketHandler.Serve)
}
