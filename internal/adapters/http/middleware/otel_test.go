package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
)

// Tests in this file that install a global TracerProvider are not parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return exporter
}

// boardRouter mounts a few board routes behind the OpenTelemetry middleware.
func boardRouter(metrics *telemetry.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Post("/api/v1/projects/{id}/drag", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/api/v1/columns/{status}/drop", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/api/v1/board", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	return r
}

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, a := range s.Attributes {
		m[a.Key] = a.Value
	}
	return m
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		method    string
		target    string
		wantName  string
		wantRoute string
		wantCode  int64
		wantError bool
	}{
		{
			method:    http.MethodPost,
			target:    "/api/v1/projects/0b6f0a8e/drag",
			wantName:  "HTTP POST /api/v1/projects/{id}/drag",
			wantRoute: "/api/v1/projects/{id}/drag",
			wantCode:  http.StatusOK,
		},
		{
			method:    http.MethodPost,
			target:    "/api/v1/columns/archived/drop",
			wantName:  "HTTP POST /api/v1/columns/{status}/drop",
			wantRoute: "/api/v1/columns/{status}/drop",
			wantCode:  http.StatusBadRequest,
		},
		{
			method:    http.MethodGet,
			target:    "/api/v1/board",
			wantName:  "HTTP GET /api/v1/board",
			wantRoute: "/api/v1/board",
			wantCode:  http.StatusServiceUnavailable,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			exporter := setupTracer(t)

			boardRouter(nil).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			spans := exporter.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("recorded %d spans, want 1", len(spans))
			}
			s := spans[0]
			if s.Name != tt.wantName {
				t.Errorf("name = %q, want %q", s.Name, tt.wantName)
			}
			attrs := spanAttrs(s)
			if got := attrs[telemetry.AttrHTTPRoute].AsString(); got != tt.wantRoute {
				t.Errorf("http.route = %q, want %q", got, tt.wantRoute)
			}
			if got := attrs[telemetry.AttrHTTPMethod].AsString(); got != tt.method {
				t.Errorf("http.method = %q, want %q", got, tt.method)
			}
			if got := attrs[telemetry.AttrHTTPStatus].AsInt64(); got != tt.wantCode {
				t.Errorf("http.status_code = %d, want %d", got, tt.wantCode)
			}
			if (s.Status.Code == codes.Error) != tt.wantError {
				t.Errorf("span status = %v, want error %v", s.Status.Code, tt.wantError)
			}
		})
	}
}

func TestOpenTelemetry_UnroutedKeepsPath(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Name != "HTTP GET /health/live" {
		t.Fatalf("spans = %+v, want one named after the raw path", spans)
	}
}

func TestOpenTelemetry_JoinsIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/drag", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	boardRouter(nil).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want %s", got, traceID)
	}
	if !spans[0].Parent.IsRemote() {
		t.Error("parent span context is not remote")
	}
}

func TestOpenTelemetry_RecordsRouteMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })
	metrics, err := telemetry.NewMetrics(mp, "project-board")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := boardRouter(metrics)
	for _, id := range []string{"a", "b", "c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+id+"/drag", http.NoBody))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/columns/x/drop", http.NoBody))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	byRoute := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if md.Name != "http.server.request.total" || !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				byRoute[route.AsString()+" "+result.AsString()] += dp.Value
			}
		}
	}

	want := map[string]int64{
		"/api/v1/projects/{id}/drag success":  3,
		"/api/v1/columns/{status}/drop error": 1,
	}
	for k, v := range want {
		if byRoute[k] != v {
			t.Errorf("count[%q] = %d, want %d (all: %v)", k, byRoute[k], v, byRoute)
		}
	}
}
