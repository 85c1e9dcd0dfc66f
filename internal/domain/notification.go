package domain

import (
	"fmt"
	"strconv"
	"time"
)

const (
	ReminderTitle     = "Medicine Reminder"
	ReminderChannelID = "medicine-reminders"
)

// NotificationID identifies a scheduled notification. Allocated ids are
// positive and never reused.
type NotificationID int64

func (id NotificationID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseNotificationID(s string) (NotificationID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotificationID, s)
	}
	return NotificationID(v), nil
}

// NotificationRequest is what gets submitted to the notification platform.
// The platform owns it once submitted.
type NotificationRequest struct {
	ID             NotificationID
	Title          string
	Body           string
	FireAt         time.Time
	Cadence        Cadence
	RepeatInterval int
	ExpiresAt      time.Time
	MedicineID     string
	ChannelID      string
	AllowWhileIdle bool
}

func NewReminderRequest(id NotificationID, medicine *Medicine, fireAt time.Time, cadence Cadence, repeatInterval int) *NotificationRequest {
	return &NotificationRequest{
		ID:             id,
		Title:          ReminderTitle,
		Body:           ReminderBody(medicine.Name, medicine.Dosage),
		FireAt:         fireAt,
		Cadence:        cadence,
		RepeatInterval: repeatInterval,
		ExpiresAt:      medicine.EndDate,
		MedicineID:     medicine.ID,
		ChannelID:      ReminderChannelID,
		AllowWhileIdle: true,
	}
}

func ReminderBody(name, dosage string) string {
	return fmt.Sprintf("Time to take %s (%s)", name, dosage)
}
