package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/logging"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
	LogLevel      slog.Level
}

type Resources struct {
	logger    *slog.Logger
	shutdowns []func(context.Context) error
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

// Shutdown flushes and stops the providers in reverse order of creation.
func (r *Resources) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(r.shutdowns) - 1; i >= 0; i-- {
		if err := r.shutdowns[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	res := &Resources{
		logger: slog.New(logging.NewHandler(os.Stdout, logging.HandlerConfig{
			Level:         cfg.LogLevel,
			Service:       cfg.ServiceInfo,
			Environment:   cfg.Environment,
			DefaultModule: cfg.DefaultModule,
			GCPProjectID:  cfg.GCPProjectID,
		})),
	}

	otelRes, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceInfo.Name),
			semconv.ServiceVersion(cfg.ServiceInfo.Version),
			semconv.DeploymentEnvironment(string(cfg.Environment)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	traceExporter, err := newTraceExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(otelRes),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler(cfg.SamplingRate))),
	}
	if traceExporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(traceExporter))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	res.shutdowns = append(res.shutdowns, tp.Shutdown)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	metricExporter, err := newMetricExporter(ctx, cfg)
	if err != nil {
		_ = res.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	mpOpts := []sdkmetric.Option{sdkmetric.WithResource(otelRes)}
	if metricExporter != nil {
		mpOpts = append(mpOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	}
	mp := sdkmetric.NewMeterProvider(mpOpts...)
	res.shutdowns = append(res.shutdowns, mp.Shutdown)

	otel.SetMeterProvider(mp)

	return res, nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}
