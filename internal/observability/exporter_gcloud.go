//go:build gcloud

package observability

import (
	"context"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newTraceExporter(_ context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	if cfg.GCPProjectID == "" {
		return texporter.New()
	}
	return texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
}

func newMetricExporter(_ context.Context, cfg Config) (sdkmetric.Exporter, error) {
	if cfg.GCPProjectID == "" {
		return mexporter.New()
	}
	return mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
}
