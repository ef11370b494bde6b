// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
)

// Handlers groups the handlers the router dispatches to.
type Handlers struct {
	Project *handlers.ProjectHandler
	Board   *handlers.BoardHandler
	Stream  *handlers.StreamHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. When requestTimeout is
// positive every route except the event stream is bounded by it.
func NewRouter(h Handlers, requestTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed on "+r.URL.Path)
	})

	// The event stream stays open for the life of the client.
	r.Get("/api/v1/events", h.Stream.Events)

	r.Group(func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		// Health endpoints (outside /api/v1 prefix).
		r.Get("/health/live", h.Health.Liveness)
		r.Get("/health/ready", h.Health.Readiness)

		// Project form and direct moves.
		r.Get("/api/v1/projects", h.Project.ListProjects)
		r.Post("/api/v1/projects", h.Project.CreateProject)
		r.Put("/api/v1/projects/{id}/status", h.Project.MoveProject)

		// Board rendering and drag-and-drop.
		r.Get("/api/v1/board", h.Board.Board)
		r.Post("/api/v1/projects/{id}/drag", h.Board.StartDrag)
		r.Post("/api/v1/columns/{status}/drop", h.Board.Drop)
	})

	return r
}
