package domain

import (
	"context"
	"time"
)

const (
	OperationSchedule = "schedule"
	OperationCancel   = "cancel"
)

type ReminderEventRecord struct {
	MedicineID     string
	Operation      string
	Cadence        string
	RequestedCount int
	SucceededCount int
	FailedCount    int
	OccurredAt     time.Time
}

//go:generate mockgen -source=reminder_event_recorder.go -destination=reminder_event_recorder_mock.go -package=domain

type ReminderEventRecorder interface {
	RecordEvents(ctx context.Context, records []ReminderEventRecord) error
	Flush(ctx context.Context) error
	Close() error
}
