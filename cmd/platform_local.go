//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/config"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/notifier"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/logging"
)

func initNotifier(_ context.Context, cfg *config.Config) (notifier.Notifier, func() error, error) {
	if cfg.TaskQueue.PrimindTasksURL == "" {
		slog.Warn("PRIMIND_TASKS_URL not set, reminders are only logged")

		return notifier.NewLogNotifier(), nil, nil
	}

	n := notifier.NewPrimindTasksClient(
		cfg.TaskQueue.PrimindTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.MaxRetries,
		notifier.BreakerConfig{
			Name:             "primind-tasks",
			FailureThreshold: cfg.TaskQueue.BreakerFailureThreshold,
			OpenTimeout:      cfg.TaskQueue.BreakerOpenTimeout,
		},
	)

	slog.Info("notifier initialized",
		slog.String("type", "primind_tasks"),
		slog.String("url", cfg.TaskQueue.PrimindTasksURL),
		slog.String("queue", cfg.TaskQueue.QueueName),
	)

	return n, nil, nil
}

func initObservability(ctx context.Context, level slog.Level) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "medicine-reminder"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: module,
		LogLevel:      level,
	})
}
