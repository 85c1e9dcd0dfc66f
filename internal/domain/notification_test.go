package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseNotificationID(t *testing.T) {
	tests := []struct {
		input   string
		want    NotificationID
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: "9001", want: 9001},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseNotificationID(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidNotificationID) {
				t.Errorf("ParseNotificationID(%q) expected ErrInvalidNotificationID, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNotificationID(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNotificationID(%q) = %d, want %d", tt.input, got, tt.want)
		}
		if got.String() != tt.input {
			t.Errorf("String() = %q, want %q", got.String(), tt.input)
		}
	}
}

func TestNewReminderRequest(t *testing.T) {
	m := validMedicine()
	fireAt := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)

	req := NewReminderRequest(7, m, fireAt, CadenceDaily, 1)

	if req.ID != 7 {
		t.Errorf("ID = %d, want 7", req.ID)
	}
	if req.Title != "Medicine Reminder" {
		t.Errorf("Title = %q", req.Title)
	}
	if req.Body != "Time to take Aspirin (100mg)" {
		t.Errorf("Body = %q", req.Body)
	}
	if !req.FireAt.Equal(fireAt) {
		t.Errorf("FireAt = %v, want %v", req.FireAt, fireAt)
	}
	if !req.ExpiresAt.Equal(m.EndDate) {
		t.Errorf("ExpiresAt = %v, want %v", req.ExpiresAt, m.EndDate)
	}
	if req.MedicineID != "42" {
		t.Errorf("MedicineID = %q, want 42", req.MedicineID)
	}
	if req.RepeatInterval != 1 || req.Cadence != CadenceDaily {
		t.Errorf("unexpected repeat settings: %s x%d", req.Cadence, req.RepeatInterval)
	}
	if req.ChannelID != ReminderChannelID || !req.AllowWhileIdle {
		t.Errorf("unexpected delivery settings: channel=%q allowWhileIdle=%v", req.ChannelID, req.AllowWhileIdle)
	}
}
