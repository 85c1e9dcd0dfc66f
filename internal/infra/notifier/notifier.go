package notifier

import (
	"context"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock.go -package=notifier

// Notifier is the platform primitive that delivers reminders. The scheduler
// only decides when and what; repeating and expiry are up to the platform.
type Notifier interface {
	Schedule(ctx context.Context, req *domain.NotificationRequest) (*ScheduleResponse, error)
	Cancel(ctx context.Context, id domain.NotificationID) error
}
