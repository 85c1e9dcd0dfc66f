package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const reminderMeterName = "medicine_reminder.service"

// Failure stages of a single clock-time.
const (
	StageParse    = "parse"
	StageAllocate = "allocate"
	StageSubmit   = "submit"
	StageRecord   = "record"
	StageCancel   = "cancel"
	StageRegistry = "registry"
)

type ReminderMetrics struct {
	scheduled         metric.Int64Counter
	failed            metric.Int64Counter
	cancelled         metric.Int64Counter
	operationDuration metric.Float64Histogram
	leadTime          metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	scheduled, err := meter.Int64Counter(
		"reminder_notifications_scheduled_total",
		metric.WithDescription("Total number of reminder notifications handed to the platform"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter(
		"reminder_failures_total",
		metric.WithDescription("Total number of failed reminder steps"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	cancelled, err := meter.Int64Counter(
		"reminder_notifications_cancelled_total",
		metric.WithDescription("Total number of reminder notifications cancelled"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram(
		"reminder_operation_duration_seconds",
		metric.WithDescription("Duration of schedule and cancel operations"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	leadTime, err := meter.Float64Histogram(
		"reminder_first_fire_lead_seconds",
		metric.WithDescription("Time between scheduling and the first fire of a reminder"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			60, 300, 900, 3600, 3*3600, 6*3600, 12*3600, 24*3600, 7*24*3600,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		scheduled:         scheduled,
		failed:            failed,
		cancelled:         cancelled,
		operationDuration: operationDuration,
		leadTime:          leadTime,
	}, nil
}

func (m *ReminderMetrics) RecordScheduled(ctx context.Context, cadence string, lead time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("cadence", cadence))
	m.scheduled.Add(ctx, 1, attrs)
	m.leadTime.Record(ctx, lead.Seconds(), attrs)
}

func (m *ReminderMetrics) RecordFailure(ctx context.Context, stage string) {
	if m == nil {
		return
	}
	m.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

func (m *ReminderMetrics) RecordCancelled(ctx context.Context, count int) {
	if m == nil || count == 0 {
		return
	}
	m.cancelled.Add(ctx, int64(count))
}

func (m *ReminderMetrics) RecordOperationDuration(ctx context.Context, operation string, d time.Duration, success bool) {
	if m == nil {
		return
	}
	m.operationDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	))
}
