//go:build gcloud

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

func initNotifier(ctx context.Context, cfg *config.Config) (notifier.Notifier, func() error, error) {
	cloudTasksClient, err := notifier.NewCloudTasksClient(ctx, notifier.CloudTasksConfig{
		ProjectID:  cfg.TaskQueue.GCloudProjectID,
		LocationID: cfg.TaskQueue.GCloudLocationID,
		QueueID:    cfg.TaskQueue.GCloudQueueID,
		TargetURL:  cfg.TaskQueue.GCloudTargetURL,
		MaxRetries: cfg.TaskQueue.MaxRetries,
		Breaker: notifier.BreakerConfig{
			Name:             "cloud-tasks",
			FailureThreshold: cfg.TaskQueue.BreakerFailureThreshold,
			OpenTimeout:      cfg.TaskQueue.BreakerOpenTimeout,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("notifier initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.TaskQueue.GCloudProjectID),
		slog.String("location", cfg.TaskQueue.GCloudLocationID),
		slog.String("queue", cfg.TaskQueue.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksClient.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksClient, cleanup, nil
}

func initObservability(ctx context.Context, level slog.Level) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "medicine-reminder"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: module,
		LogLevel:      level,
	})
}
