package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/config"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/handler"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/health"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/reminderrecorder"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/middleware"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/cadence"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/firetime"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/reminder"
)

// Version is set via ldflags at build time
var Version = "dev"

const module = logging.Module("medicine-reminder")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB locally, BigQuery on gcloud
	eventRecorder, err := reminderrecorder.NewRecorder(ctx, &reminderrecorder.Config{
		Disabled:          cfg.Recorder.Disabled,
		InfluxDBURL:       cfg.Recorder.InfluxDBURL,
		InfluxDBToken:     cfg.Recorder.InfluxDBToken,
		InfluxDBOrg:       cfg.Recorder.InfluxDBOrg,
		InfluxDBBucket:    cfg.Recorder.InfluxDBBucket,
		BigQueryProjectID: cfg.Recorder.BigQueryProjectID,
		BigQueryDataset:   cfg.Recorder.BigQueryDataset,
		BigQueryTable:     cfg.Recorder.BigQueryTable,
	})
	if err != nil {
		slog.Error("failed to initialize reminder event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := eventRecorder.Close(); err != nil {
			slog.Warn("failed to close reminder event recorder", slog.String("error", err.Error()))
		}
	}()

	reminderNotifier, cleanup, err := initNotifier(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize notifier", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notifier cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	reminderService := reminder.NewService(
		repository.NewIDAllocator(redisClient),
		repository.NewReminderRegistry(redisClient, cfg.Reminder.RegistryMaxRetries),
		reminderNotifier,
		firetime.NewCalculator(cfg.Reminder.Location, nil),
		cadence.NewMapper(),
		reminderMetrics,
		eventRecorder,
		cfg.Reminder.OperationTimeout,
	)

	var medicines medicineapi.MedicineRepository
	if cfg.MedicineAPI.BaseURL != "" {
		medicines = medicineapi.NewClient(cfg.MedicineAPI.BaseURL, cfg.Reminder.Location)
	} else {
		slog.Warn("MEDICINE_API_URL not set, medicine endpoints disabled")
	}

	reminderHandler := handler.NewReminderHandler(reminderService, cfg.Reminder.Location)
	medicineHandler := handler.NewMedicineHandler(medicines, reminderHandler, cfg.Reminder.Location)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/grpc.health.v1.Health/Check"},
		Module:      module,
		TracerName:  "github.com/KasumiMercury/primind-medicine-reminder/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	health.NewChecker(redisClient, Version).RegisterGin(r)

	v1 := r.Group("/api/v1")
	reminderHandler.Register(v1)
	medicineHandler.Register(v1)

	// h2c lets gRPC health clients reach the same port without TLS.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Reminder.Location.String()),
			slog.Duration("operation_timeout", cfg.Reminder.OperationTimeout),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := eventRecorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush reminder events", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
