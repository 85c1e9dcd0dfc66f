package domain

import "context"

//go:generate mockgen -source=reminder_registry.go -destination=reminder_registry_mock.go -package=domain

// ReminderRegistry maps, per medicine, each reminder clock-time to the
// notification id scheduled for it.
type ReminderRegistry interface {
	Record(ctx context.Context, medicineID string, clock ClockTime, id NotificationID) error
	AllIDsFor(ctx context.Context, medicineID string) ([]NotificationID, error)
	Entries(ctx context.Context, medicineID string) (map[string]NotificationID, error)
	Clear(ctx context.Context, medicineID string) error
}
