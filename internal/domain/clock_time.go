package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day without a date component.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" (a single-digit hour is accepted).
func ParseClockTime(s string) (ClockTime, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := parseClockField(hourPart, 23)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q: hour %v", ErrInvalidClockTime, s, err)
	}

	if len(minutePart) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q: minute must have two digits", ErrInvalidClockTime, s)
	}
	minute, err := parseClockField(minutePart, 59)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q: minute %v", ErrInvalidClockTime, s, err)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

func parseClockField(s string, max int) (int, error) {
	if s == "" || len(s) > 2 {
		return 0, fmt.Errorf("has %d digits", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("is not numeric")
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, fmt.Errorf("out of range (max %d)", max)
	}

	return v, nil
}

// String returns the zero-padded "HH:MM" form used as the registry key.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
