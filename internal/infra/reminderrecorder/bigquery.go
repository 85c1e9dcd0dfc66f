//go:build gcloud

package reminderrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	OccurredAt     time.Time `bigquery:"occurred_at"`
	MedicineID     string    `bigquery:"medicine_id"`
	Operation      string    `bigquery:"operation"`
	Cadence        string    `bigquery:"cadence"`
	RequestedCount int64     `bigquery:"requested_count"`
	SucceededCount int64     `bigquery:"succeeded_count"`
	FailedCount    int64     `bigquery:"failed_count"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ReminderEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "reminder event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, reminder event recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, reminder event recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "reminder event recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordEvents(ctx context.Context, records []domain.ReminderEventRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:     now,
			OccurredAt:     record.OccurredAt,
			MedicineID:     record.MedicineID,
			Operation:      record.Operation,
			Cadence:        record.Cadence,
			RequestedCount: int64(record.RequestedCount),
			SucceededCount: int64(record.SucceededCount),
			FailedCount:    int64(record.FailedCount),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert reminder events to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
