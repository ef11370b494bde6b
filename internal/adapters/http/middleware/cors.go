package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
)

// CORS returns middleware that lets browser front-ends on the configured
// origins call the board API and open the event stream. Preflight requests
// are answered here and never reach the router. When logger is non-nil the
// cors decisions are logged at debug level.
func CORS(cfg config.CORSConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Last-Event-ID",
			headerRequestID,
			headerCorrelationID,
		},
		ExposedHeaders:   []string{"Location", headerRequestID, headerCorrelationID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if logger != nil {
		opts.Logger = corsLogger{logger: logger}
	}
	return cors.New(opts).Handler
}

// corsLogger adapts slog to the Printf logger the cors package expects.
type corsLogger struct {
	logger *slog.Logger
}

func (l corsLogger) Printf(format string, v ...any) {
	l.logger.Debug("cors", slog.String("detail", fmt.Sprintf(format, v...)))
}
