// Package http is the inbound adapter: the chi route table, the server
// lifecycle and, in subpackages, handlers, DTOs and middleware.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/handlers"
)

// NewRouter mounts the health probes and the /api/v1 tracker routes behind
// middlewares, applied outermost first. Unknown paths and methods are
// answered with problem documents.
func NewRouter(
	tracker *handlers.TrackerHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(problem(http.StatusNotFound, "no such route"))
	r.MethodNotAllowed(problem(http.StatusMethodNotAllowed, "method not supported on this route"))

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/provider", tracker.Provider)
		r.Post("/connection/validate", tracker.ValidateConnection)
		r.Get("/categories", tracker.ListCategories)
		r.Get("/statuses", tracker.ListStatuses)
		r.Get("/issues", tracker.ListIssues)

		r.Route("/issues/{id}", func(r chi.Router) {
			r.Get("/url", tracker.IssueURL)
			r.Post("/description", tracker.AppendDescription)
			r.Put("/status", tracker.ChangeStatus)
			r.Post("/close", tracker.CloseIssue)
		})
	})
	return r
}

func problem(status int, detail string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, dto.Problem{
			Type:     "about:blank",
			Title:    http.StatusText(status),
			Status:   status,
			Detail:   detail,
			Instance: r.RequestURI,
		})
	}
}
