//go:build !gcloud

package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporters are only created when an OTLP collector is configured.
func otlpConfigured() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

func newTraceExporter(ctx context.Context, _ Config) (sdktrace.SpanExporter, error) {
	if !otlpConfigured() && os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
		return nil, nil
	}
	return otlptracehttp.New(ctx)
}

func newMetricExporter(ctx context.Context, _ Config) (sdkmetric.Exporter, error) {
	if !otlpConfigured() && os.Getenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT") == "" {
		return nil, nil
	}
	return otlpmetrichttp.New(ctx)
}
