package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	ScheduleTypeDaily  = "Daily"
	ScheduleTypeWeekly = "Weekly"
)

// DefaultReminderTimes are applied when a medicine is created without any
// reminder clock-times.
var DefaultReminderTimes = []string{"08:00", "14:00", "20:00"}

// Medicine is a read-only snapshot of a medicine owned by the remote API.
type Medicine struct {
	ID            string
	Name          string
	Dosage        string
	StartDate     time.Time
	EndDate       time.Time
	ReminderTimes []string
	ScheduleType  string
}

// Validate checks the fields a reminder cannot be built without.
// Reminder clock-times are parsed later, one at a time.
func (m *Medicine) Validate() error {
	var missing []string

	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Dosage) == "" {
		missing = append(missing, "dosage")
	}
	if m.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if m.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	for _, rt := range m.ReminderTimes {
		if strings.TrimSpace(rt) == "" {
			missing = append(missing, "reminderTimes")
			break
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidMedicine, strings.Join(missing, ", "))
	}

	if m.EndDate.Before(m.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidMedicine)
	}

	return nil
}

// ApplyDefaults fills reminder times and schedule type the way the mobile
// form pre-populates them.
func (m *Medicine) ApplyDefaults() {
	if len(m.ReminderTimes) == 0 {
		m.ReminderTimes = append([]string(nil), DefaultReminderTimes...)
	}
	if strings.TrimSpace(m.ScheduleType) == "" {
		m.ScheduleType = ScheduleTypeDaily
	}
}
