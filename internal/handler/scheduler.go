package handler

import (
	"context"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=handler

// ReminderScheduler is the part of the reminder service the HTTP layer uses.
type ReminderScheduler interface {
	ScheduleAllReminders(ctx context.Context, medicine *domain.Medicine) ([]domain.NotificationID, error)
	CancelMedicineNotifications(ctx context.Context, medicineID string) error
	Reminders(ctx context.Context, medicineID string) (map[string]domain.NotificationID, error)
}
