//go:build !gcloud

package reminderrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

const measurement = "reminder_event"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ReminderEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "reminder event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, reminder event recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "reminder event recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
		bucket:   cfg.InfluxDBBucket,
	}, nil
}

func toPoint(record domain.ReminderEventRecord) *write.Point {
	return influxdb2.NewPoint(
		measurement,
		map[string]string{
			"medicine_id": record.MedicineID,
			"operation":   record.Operation,
			"cadence":     record.Cadence,
		},
		map[string]any{
			"requested": record.RequestedCount,
			"scheduled": record.SucceededCount,
			"failed":    record.FailedCount,
		},
		record.OccurredAt,
	)
}

func (r *influxDBRecorder) RecordEvents(ctx context.Context, records []domain.ReminderEventRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, toPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write reminder events to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
