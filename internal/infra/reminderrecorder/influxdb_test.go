//go:build !gcloud

package reminderrecorder

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

func TestNewRecorder_FallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBURL: "http://localhost:8086", InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBURL: "http://localhost:8086", InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecorder(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("NewRecorder() error = %v", err)
			}
			if _, ok := r.(*noopRecorder); !ok {
				t.Errorf("NewRecorder() = %T, want *noopRecorder", r)
			}
		})
	}
}

func TestToPoint(t *testing.T) {
	at := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	p := toPoint(domain.ReminderEventRecord{
		MedicineID:     "42",
		Operation:      domain.OperationSchedule,
		Cadence:        "daily",
		RequestedCount: 3,
		SucceededCount: 2,
		FailedCount:    1,
		OccurredAt:     at,
	})

	if p.Name() != measurement {
		t.Errorf("Name() = %q", p.Name())
	}
	if !p.Time().Equal(at) {
		t.Errorf("Time() = %v", p.Time())
	}

	tags := map[string]string{}
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["medicine_id"] != "42" || tags["operation"] != "schedule" || tags["cadence"] != "daily" {
		t.Errorf("tags = %v", tags)
	}

	fields := map[string]any{}
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	if fields["scheduled"] != int64(2) || fields["failed"] != int64(1) {
		t.Errorf("fields = %v", fields)
	}
}
