package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/specialistvlad/jmxforge/internal/planstore"
)

// NewRouter wires all API routes. The logger is attached to every request
// context so handlers and the core can log with request scope.
func NewRouter(logger *slog.Logger, store *planstore.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggingMiddleware(logger))
	r.Use(RecoverMiddleware)

	r.Get("/health", HealthHandler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/library", LibraryHandler())
		api.Get("/library/{category}", LibraryCategoryHandler())

		api.Post("/validate/component", ValidateComponentHandler())
		api.Post("/validate/plan", ValidatePlanHandler())

		api.Post("/generate", GenerateHandler())
		api.Post("/parse", ParseHandler(store))

		api.Get("/sample", SampleHandler(store))

		api.Route("/plans", func(plans chi.Router) {
			plans.Get("/", ListPlansHandler(store))
			plans.Post("/", CreatePlanHandler(store))
			plans.Get("/{id}", GetPlanHandler(store))
			plans.Delete("/{id}", DeletePlanHandler(store))
		})
	})

	return r
}
