package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moba-league/league-system/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	statsHandler *handlers.StatsHandler,
	resultHandler *handlers.ResultHandler,
	rosterHandler *handlers.RosterHandler,
	scheduleHandler *handlers.ScheduleHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Read side: every endpoint recomputes from stored results on request.
	router.Route("/stats", func(r chi.Router) {
		r.Get("/standings", statsHandler.StandingsHandler)
		r.Get("/standings/detailed", statsHandler.DetailedStandingsHandler)
		r.Get("/players", statsHandler.PlayerStatsHandler)
		r.Get("/players/heroes", statsHandler.PlayerHeroStatsHandler)
		r.Get("/teams", statsHandler.TeamStatsHandler)
		r.Get("/season", statsHandler.SeasonStatsHandler)
	})

	router.Route("/results", func(r chi.Router) {
		r.Get("/", resultHandler.ListHandler)
		r.Post("/", resultHandler.SaveHandler)
		r.Put("/{matchID}/records", resultHandler.SaveRecordsHandler)
		r.Delete("/{matchID}", resultHandler.DeleteHandler)
	})

	router.Route("/roster", func(r chi.Router) {
		r.Get("/", rosterHandler.ListHandler)
		r.Post("/", rosterHandler.CreateHandler)
		r.Put("/{id}", rosterHandler.UpdateHandler)
		r.Delete("/{id}", rosterHandler.DeleteHandler)
	})

	router.Route("/schedule", func(r chi.Router) {
		r.Get("/", scheduleHandler.CurrentHandler)
		r.Get("/history", scheduleHandler.HistoryHandler)
		r.Post("/draw", scheduleHandler.GenerateHandler)
	})

	router.Get("/ws", webSocketHandler.ServeWs)
}
