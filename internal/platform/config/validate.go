package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"
)

// Validate checks every section and joins all violations into one error.
func (c *Config) Validate() error {
	var v violations
	c.Server.validate(&v)
	c.Log.validate(&v)
	c.Client.validate(&v)
	c.Telemetry.validate(&v)
	c.CORS.validate(&v)
	c.Stream.validate(&v)
	c.Webhook.validate(&v)
	return errors.Join(v...)
}

// violations collects config errors keyed by their dotted path.
type violations []error

// when records "key: msg" if broken is true.
func (v *violations) when(broken bool, key, format string, args ...any) {
	if broken {
		*v = append(*v, fmt.Errorf("%s: "+format, append([]any{key}, args...)...))
	}
}

func (s *ServerConfig) validate(v *violations) {
	v.when(s.Port < 1 || s.Port > 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	v.when(s.ReadTimeout <= 0, "server.read_timeout", "must be positive")
	v.when(s.WriteTimeout <= 0, "server.write_timeout", "must be positive")
	v.when(s.RequestTimeout <= 0, "server.request_timeout", "must be positive")
}

// validate accepts the level names slog understands (with offsets such as
// "info+4") plus "warning".
func (l *LogConfig) validate(v *violations) {
	var lvl slog.Level
	badLevel := !strings.EqualFold(l.Level, "warning") && lvl.UnmarshalText([]byte(l.Level)) != nil
	v.when(badLevel, "log.level", "must be debug, info, warn or error; got %q", l.Level)

	badFormat := !strings.EqualFold(l.Format, "json") && !strings.EqualFold(l.Format, "text")
	v.when(badFormat, "log.format", "must be json or text; got %q", l.Format)
}

func (cl *ClientConfig) validate(v *violations) {
	v.when(cl.Timeout <= 0, "client.timeout", "must be positive")
	v.when(cl.Retry.MaxAttempts < 1, "client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
	v.when(cl.Retry.Multiplier <= 0, "client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	v.when(cl.CircuitBreaker.MaxFailures < 1, "client.circuit_breaker.max_failures",
		"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	v.when(rl.RequestsPerSecond < 0, "client.rate_limit.requests_per_second",
		"must not be negative, got %g", rl.RequestsPerSecond)
	v.when(rl.RequestsPerSecond > 0 && rl.BurstSize < 1, "client.rate_limit.burst_size",
		"must be >= 1 when rate limiting, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) validate(v *violations) {
	if !t.Enabled {
		return
	}
	v.when(t.Exporter != "stdout" && t.Exporter != "otlp", "telemetry.exporter",
		"must be stdout or otlp; got %q", t.Exporter)
	v.when(t.Exporter == "otlp" && t.Endpoint == "", "telemetry.endpoint", "required for the otlp exporter")
}

func (c *CORSConfig) validate(v *violations) {
	v.when(len(c.AllowedOrigins) == 0, "cors.allowed_origins", "must not be empty")
	v.when(c.AllowCredentials && slices.Contains(c.AllowedOrigins, "*"), "cors.allow_credentials",
		"cannot be combined with a wildcard origin")
}

func (s *StreamConfig) validate(v *violations) {
	v.when(s.Keepalive <= 0, "stream.keepalive", "must be positive")
	v.when(s.BufferSize < 1, "stream.buffer_size", "must be >= 1, got %d", s.BufferSize)
}

func (w *WebhookConfig) validate(v *violations) {
	if !w.Enabled {
		return
	}
	v.when(len(w.URLs) == 0, "webhook.urls", "must not be empty when the webhook is enabled")
	for _, raw := range w.URLs {
		u, err := url.Parse(raw)
		v.when(err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "",
			"webhook.urls", "%q is not an absolute http(s) URL", raw)
	}
	v.when(w.QueueSize < 1, "webhook.queue_size", "must be >= 1, got %d", w.QueueSize)
	v.when(w.MaxConcurrency < 1, "webhook.max_concurrency", "must be >= 1, got %d", w.MaxConcurrency)
}
