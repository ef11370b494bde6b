// Package httpclient is the outbound HTTP client behind the snapshot
// webhook. Each Client talks to one endpoint and wraps every delivery in
//
//	breaker -> rate limit -> ID headers -> span -> retry -> transport
//
// Request and correlation IDs stored with WithRequestID and
// WithCorrelationID are copied onto outbound requests so a mirrored snapshot
// can be traced back to the board mutation that caused it.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
)

type idsKey struct{}

// traceIDs are the inbound identifiers forwarded on outbound requests.
type traceIDs struct {
	request     string
	correlation string
}

func idsFrom(ctx context.Context) traceIDs {
	ids, _ := ctx.Value(idsKey{}).(traceIDs)
	return ids
}

// WithRequestID stores id for the X-Request-ID header of outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.request = id
	return context.WithValue(ctx, idsKey{}, ids)
}

// WithCorrelationID stores id for the X-Correlation-ID header of outbound
// calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.correlation = id
	return context.WithValue(ctx, idsKey{}, ids)
}

// Client delivers requests to a single endpoint.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil disables rate limiting
	retry       config.RetryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New returns a client for endpoint. serviceName labels its spans, metrics,
// logs and health results ("webhook-0"). Every client has its own breaker.
// metrics and logger may be nil.
func New(cfg *config.ClientConfig, serviceName, endpoint string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		endpoint:    endpoint,
		serviceName: serviceName,
		retry:       cfg.Retry,
		metrics:     metrics,
		logger:      logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](breakerSettings(serviceName, cfg.CircuitBreaker, logger))
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func breakerSettings(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A delivery abandoned by its caller (shutdown, superseded snapshot)
		// says nothing about the endpoint.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// Do sends req. A non-nil response always has an open body the caller must
// close; that includes the final response of an exhausted retry, which comes
// back together with an error. Breaker rejections and transport failures
// return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		stampIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)
		c.finishSpan(span, resp, err)
		return struct{}{}, err
	})

	c.recordMetrics(ctx, method, start, resp, err)
	return resp, err
}

// Endpoint returns the URL this client delivers to.
func (c *Client) Endpoint() string { return c.endpoint }

// CircuitBreakerState returns "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string { return c.breaker.State().String() }

// Name implements [ports.HealthChecker].
func (c *Client) Name() string { return c.serviceName }

// HealthCheck implements [ports.HealthChecker] from the breaker state alone:
// closed is healthy, half-open is degraded and open is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func stampIDs(ctx context.Context, h http.Header) {
	ids := idsFrom(ctx)
	if ids.request != "" {
		h.Set("X-Request-ID", ids.request)
	}
	if ids.correlation != "" {
		h.Set("X-Correlation-ID", ids.correlation)
	}
}

// startSpan creates an OTEL client span for the outbound request and injects
// W3C trace context into its headers. The URL is recorded with any userinfo
// password masked.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			telemetry.AttrPeerService.String(c.serviceName),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records client request duration and count. It runs outside
// the circuit breaker so rejected deliveries are counted too. Safe with nil
// metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// outcome classifies a delivery for the result metric attribute.
func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	return uint32(min(max(int64(v), 0), math.MaxUint32))
}
