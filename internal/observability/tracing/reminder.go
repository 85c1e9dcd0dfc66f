package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-medicine-reminder/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartScheduleSpan(ctx context.Context, medicineID string, clockTimeCount int) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule_all",
		trace.WithAttributes(
			attribute.String("medicine.id", medicineID),
			attribute.Int("reminder.clock_time_count", clockTimeCount),
		),
	)
}

func StartClockTimeSpan(ctx context.Context, medicineID, clock string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule_one",
		trace.WithAttributes(
			attribute.String("medicine.id", medicineID),
			attribute.String("reminder.clock_time", clock),
		),
	)
}

func StartCancelSpan(ctx context.Context, medicineID string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.cancel_all",
		trace.WithAttributes(
			attribute.String("medicine.id", medicineID),
		),
	)
}

func RecordFireTime(span trace.Span, notificationID string, fireAt time.Time, cadence string) {
	span.SetAttributes(
		attribute.String("notification.id", notificationID),
		attribute.String("notification.fire_at", fireAt.Format(time.RFC3339)),
		attribute.String("notification.cadence", cadence),
	)
}

func RecordScheduleResult(span trace.Span, scheduledCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("schedule.scheduled_count", scheduledCount),
		attribute.Int("schedule.failed_count", failedCount),
	)
	recordStatus(span, err)
}

func RecordCancelResult(span trace.Span, cancelledCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("cancel.cancelled_count", cancelledCount),
		attribute.Int("cancel.failed_count", failedCount),
	)
	recordStatus(span, err)
}

func RecordError(span trace.Span, err error) {
	recordStatus(span, err)
}

func recordStatus(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
