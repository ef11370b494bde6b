package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Board returns the board service's global pipeline in order. Timeout is not
// part of it; the router applies it per route group so the event stream is
// left unbounded. metrics may be nil.
func Board(cors config.CORSConfig, metrics *telemetry.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		CORS(cors, logging.Component(logger, "cors")),
		OpenTelemetry(metrics),
		Logging(logger),
	)
}
