package domain

import (
	"errors"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClockTime
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: ClockTime{Hour: 8, Minute: 0}},
		{name: "afternoon", input: "14:30", want: ClockTime{Hour: 14, Minute: 30}},
		{name: "midnight", input: "00:00", want: ClockTime{Hour: 0, Minute: 0}},
		{name: "last minute of day", input: "23:59", want: ClockTime{Hour: 23, Minute: 59}},
		{name: "single digit hour", input: "8:05", want: ClockTime{Hour: 8, Minute: 5}},
		{name: "surrounding spaces", input: " 20:00 ", want: ClockTime{Hour: 20, Minute: 0}},
		{name: "empty", input: "", wantErr: true},
		{name: "no separator", input: "0800", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "single digit minute", input: "12:5", wantErr: true},
		{name: "non numeric", input: "ab:cd", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "seconds component", input: "12:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClockTime(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidClockTime) {
					t.Errorf("expected ErrInvalidClockTime, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseClockTime(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockTime_String(t *testing.T) {
	tests := []struct {
		clock ClockTime
		want  string
	}{
		{ClockTime{Hour: 8, Minute: 0}, "08:00"},
		{ClockTime{Hour: 14, Minute: 5}, "14:05"},
		{ClockTime{Hour: 0, Minute: 0}, "00:00"},
	}

	for _, tt := range tests {
		if got := tt.clock.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
