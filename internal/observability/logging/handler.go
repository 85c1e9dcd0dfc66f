package logging

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type HandlerConfig struct {
	Level         slog.Level
	Service       ServiceInfo
	Environment   Environment
	DefaultModule Module
	GCPProjectID  string
}

// contextHandler decorates records with request and trace identifiers
// carried by the context.
type contextHandler struct {
	slog.Handler
	defaultModule Module
	projectID     string
}

func NewHandler(w io.Writer, cfg HandlerConfig) slog.Handler {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: replaceAttr,
	})

	attrs := []slog.Attr{
		slog.Group("service",
			slog.String("name", cfg.Service.Name),
			slog.String("version", cfg.Service.Version),
			slog.String("revision", cfg.Service.Revision),
		),
		slog.String("env", string(cfg.Environment)),
	}

	return &contextHandler{
		Handler:       base.WithAttrs(attrs),
		defaultModule: cfg.DefaultModule,
		projectID:     cfg.GCPProjectID,
	}
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	module := h.defaultModule
	if m, ok := ModuleFromContext(ctx); ok {
		module = m
	}
	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	if id := RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
		r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		Handler:       h.Handler.WithAttrs(attrs),
		defaultModule: h.defaultModule,
		projectID:     h.projectID,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		Handler:       h.Handler.WithGroup(name),
		defaultModule: h.defaultModule,
		projectID:     h.projectID,
	}
}
