package middleware

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/tracing"
)

const RequestIDHeader = "x-request-id"

type GinConfig struct {
	// SkipPaths are served without access logs, spans or metrics.
	SkipPaths   []string
	Module      logging.Module
	TracerName  string
	HTTPMetrics *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	tracer := otel.Tracer(cfg.TracerName)

	return func(c *gin.Context) {
		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(RequestIDHeader))
		c.Header(RequestIDHeader, requestID)

		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		if cfg.Module != "" {
			ctx = logging.WithModule(ctx, cfg.Module)
		}

		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("http.user_agent", c.Request.UserAgent()),
				attribute.String("request.id", requestID),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, elapsed)

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		slog.Log(ctx, level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", elapsed),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
