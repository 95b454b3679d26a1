/*
server.go - HTTP server setup and routing

PURPOSE:
  Builds the chi router, wires middleware and maps routes to handlers.
  Kept separate from the handlers so tests can mount the router around an
  in-memory engine.

SEE ALSO:
  - handlers.go: The handler implementations
  - cmd/server/main.go: Process entrypoint
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the full route tree with standard middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/calculator", func(r chi.Router) {
			r.Get("/month", h.CalculateMonth)
			r.Post("/month/save", h.SaveMonth)
			r.Get("/summaries", h.ListSummaries)
			r.Post("/summaries/{id}/lock", h.LockSummary)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShifts)
			r.Post("/", h.CreateShift)
			r.Put("/{id}", h.UpdateShift)
			r.Delete("/{id}", h.DeleteShift)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.PutSettings)
		})

		r.Get("/holidays", h.ListHolidays)
	})

	return r
}
