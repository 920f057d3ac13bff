package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/cards", s.handleCreateCard)
		r.Get("/cards", s.handleListCards)
		r.Get("/cards/due", s.handleDueCards)
		r.Get("/cards/{id}", s.handleGetCard)
		r.Post("/cards/{id}/review", s.handleReviewCard)
		r.Get("/cards/{id}/history", s.handleCardHistory)
		r.Delete("/cards/{id}", s.handleDeleteCard)

		r.Post("/packs", s.handleCreatePack)
		r.Get("/packs", s.handleListPacks)
		r.Post("/packs/{id}/cards", s.handleAddCardToPack)

		r.Get("/forecast", s.handleForecast)
		r.Get("/insights", s.handleInsights)
	})

	return r
}
