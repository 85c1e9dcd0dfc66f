package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

// LogNotifier only logs requests. Used when no task queue is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

var _ Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Schedule(ctx context.Context, req *domain.NotificationRequest) (*ScheduleResponse, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	slog.InfoContext(ctx, "reminder scheduled (log only)",
		slog.String("notification_id", req.ID.String()),
		slog.String("medicine_id", req.MedicineID),
		slog.Time("fire_at", req.FireAt),
		slog.String("cadence", req.Cadence.String()),
		slog.Time("expires_at", req.ExpiresAt),
	)

	return &ScheduleResponse{
		Name:         taskName(req.ID),
		ScheduleTime: req.FireAt,
		CreateTime:   time.Now(),
	}, nil
}

func (n *LogNotifier) Cancel(ctx context.Context, id domain.NotificationID) error {
	slog.InfoContext(ctx, "reminder cancelled (log only)",
		slog.String("notification_id", id.String()),
	)
	return nil
}
