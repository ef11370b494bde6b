// Package telemetry sets up the OpenTelemetry tracer and meter providers and
// owns the instruments the board records: HTTP server and client traffic,
// project creation and moves, listener notifications and live subscriptions.
// Spans and metrics go to stdout in development and to an OTLP/HTTP
// collector elsewhere.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrUnsupportedExporter is returned when the exporter name is neither
// ExporterStdout nor ExporterOTLP.
var ErrUnsupportedExporter = errors.New("telemetry: unsupported exporter")

// errMissingEndpoint is returned when the OTLP exporter has no endpoint.
var errMissingEndpoint = errors.New("telemetry: otlp exporter requires an endpoint")

// Attribute keys for metric labels.
var (
	AttrHTTPMethod    = attribute.Key("http.method")
	AttrHTTPStatus    = attribute.Key("http.status_code")
	AttrHTTPRoute     = attribute.Key("http.route")
	AttrPeerService   = attribute.Key("peer.service")
	AttrResult        = attribute.Key("result")
	AttrProjectStatus = attribute.Key("project.status")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// Board instruments.
	ProjectsCreated    metric.Int64Counter
	ProjectsMoved      metric.Int64Counter
	BoardNotifications metric.Int64Counter
	BoardSubscribers   metric.Int64UpDownCounter
}

// InitTracer installs a global TracerProvider exporting to exporter and sets
// the W3C trace-context and baggage propagators. Callers shut it down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	dst, res, err := prepare(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var spans sdktrace.SpanExporter
	if dst.otlp {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(dst.hostPort)}
		if dst.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spans, err = otlptracehttp.New(ctx, opts...)
	} else {
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader on
// exporter. Callers shut it down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	dst, res, err := prepare(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var metrics sdkmetric.Exporter
	if dst.otlp {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(dst.hostPort)}
		if dst.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		metrics, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		metrics, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var (
		m    Metrics
		errs []error
	)
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram("http.client.request.duration", "Duration of outgoing HTTP requests")
	m.ClientRequestTotal = counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}")

	m.ProjectsCreated = counter("board.projects.created", "Projects added to the board", "{project}")
	m.ProjectsMoved = counter("board.projects.moved", "Projects moved between columns", "{project}")
	m.BoardNotifications = counter("board.notifications", "Snapshots delivered to board listeners", "{notification}")

	subscribers, err := meter.Int64UpDownCounter("board.subscribers",
		metric.WithDescription("Active board subscriptions"),
		metric.WithUnit("{subscription}"),
	)
	if err != nil {
		errs = append(errs, fmt.Errorf("creating board.subscribers: %w", err))
	}
	m.BoardSubscribers = subscribers

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// destination is a validated exporter choice.
type destination struct {
	otlp     bool
	hostPort string
	insecure bool
}

// parseDestination validates exporter and, for OTLP, splits endpoint into
// the host:port the exporters expect. Endpoints without a scheme are used
// as-is; only https endpoints get TLS.
func parseDestination(exporter, endpoint string) (destination, error) {
	switch exporter {
	case ExporterStdout:
		return destination{}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return destination{}, errMissingEndpoint
		}
		dst := destination{otlp: true, hostPort: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			dst.hostPort = u.Host
			dst.insecure = u.Scheme != "https"
		}
		return dst, nil
	default:
		return destination{}, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func prepare(serviceName, exporter, endpoint string) (destination, *resource.Resource, error) {
	dst, err := parseDestination(exporter, endpoint)
	if err != nil {
		return destination{}, nil, err
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return destination{}, nil, fmt.Errorf("creating resource: %w", err)
	}
	return dst, res, nil
}
