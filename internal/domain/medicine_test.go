package domain

import (
	"errors"
	"testing"
	"time"
)

func validMedicine() *Medicine {
	return &Medicine{
		ID:            "42",
		Name:          "Aspirin",
		Dosage:        "100mg",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ReminderTimes: []string{"08:00"},
		ScheduleType:  ScheduleTypeDaily,
	}
}

func TestMedicine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Medicine)
		wantErr bool
	}{
		{name: "valid", mutate: func(m *Medicine) {}},
		{name: "same start and end", mutate: func(m *Medicine) { m.EndDate = m.StartDate }},
		{name: "missing name", mutate: func(m *Medicine) { m.Name = " " }, wantErr: true},
		{name: "missing dosage", mutate: func(m *Medicine) { m.Dosage = "" }, wantErr: true},
		{name: "missing start date", mutate: func(m *Medicine) { m.StartDate = time.Time{} }, wantErr: true},
		{name: "missing end date", mutate: func(m *Medicine) { m.EndDate = time.Time{} }, wantErr: true},
		{name: "empty reminder time", mutate: func(m *Medicine) { m.ReminderTimes = []string{"08:00", ""} }, wantErr: true},
		{name: "end before start", mutate: func(m *Medicine) { m.EndDate = m.StartDate.AddDate(0, 0, -1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMedicine()
			tt.mutate(m)

			err := m.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMedicine) {
					t.Errorf("expected ErrInvalidMedicine, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMedicine_ApplyDefaults(t *testing.T) {
	m := &Medicine{Name: "Vitamin D", Dosage: "1 tab"}
	m.ApplyDefaults()

	if len(m.ReminderTimes) != 3 || m.ReminderTimes[0] != "08:00" || m.ReminderTimes[2] != "20:00" {
		t.Errorf("unexpected default reminder times: %v", m.ReminderTimes)
	}
	if m.ScheduleType != ScheduleTypeDaily {
		t.Errorf("ScheduleType = %q, want %q", m.ScheduleType, ScheduleTypeDaily)
	}

	// defaults must not alias the package-level slice
	m.ReminderTimes[0] = "09:00"
	if DefaultReminderTimes[0] != "08:00" {
		t.Error("ApplyDefaults aliased DefaultReminderTimes")
	}

	kept := &Medicine{ReminderTimes: []string{"07:15"}, ScheduleType: "Weekly"}
	kept.ApplyDefaults()
	if len(kept.ReminderTimes) != 1 || kept.ScheduleType != "Weekly" {
		t.Errorf("ApplyDefaults overwrote provided values: %+v", kept)
	}
}
