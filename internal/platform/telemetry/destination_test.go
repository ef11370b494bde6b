package telemetry

import (
	"errors"
	"testing"
)

func TestParseDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		want     destination
		wantErr  error
	}{
		{name: "stdout ignores endpoint", exporter: ExporterStdout, endpoint: "http://ignored:4318", want: destination{}},
		{
			name:     "bare host port",
			exporter: ExporterOTLP,
			endpoint: "otel-collector.observability.svc:4318",
			want:     destination{otlp: true, hostPort: "otel-collector.observability.svc:4318", insecure: true},
		},
		{
			name:     "http url",
			exporter: ExporterOTLP,
			endpoint: "http://otel-collector:4318",
			want:     destination{otlp: true, hostPort: "otel-collector:4318", insecure: true},
		},
		{
			name:     "https url",
			exporter: ExporterOTLP,
			endpoint: "https://collector.example.com",
			want:     destination{otlp: true, hostPort: "collector.example.com"},
		},
		{name: "otlp without endpoint", exporter: ExporterOTLP, wantErr: errMissingEndpoint},
		{name: "unknown exporter", exporter: "jaeger", wantErr: ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseDestination(tt.exporter, tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseDestination() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDestination() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
