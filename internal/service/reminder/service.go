package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/notifier"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/cadence"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/firetime"
)

// Service schedules and cancels the reminders of a medicine.
type Service struct {
	allocator       domain.IDAllocator
	registry        domain.ReminderRegistry
	notifier        notifier.Notifier
	fireTimes       *firetime.Calculator
	cadences        *cadence.Mapper
	reminderMetrics *metrics.ReminderMetrics
	recorder        domain.ReminderEventRecorder
	locks           *keyedMutex
	timeout         time.Duration
}

func NewService(
	allocator domain.IDAllocator,
	registry domain.ReminderRegistry,
	n notifier.Notifier,
	fireTimes *firetime.Calculator,
	cadences *cadence.Mapper,
	reminderMetrics *metrics.ReminderMetrics,
	recorder domain.ReminderEventRecorder,
	timeout time.Duration,
) *Service {
	if fireTimes == nil {
		fireTimes = firetime.NewCalculator(nil, nil)
	}
	if cadences == nil {
		cadences = cadence.NewMapper()
	}

	return &Service{
		allocator:       allocator,
		registry:        registry,
		notifier:        n,
		fireTimes:       fireTimes,
		cadences:        cadences,
		reminderMetrics: reminderMetrics,
		recorder:        recorder,
		locks:           newKeyedMutex(),
		timeout:         timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// ScheduleAllReminders submits one repeating notification per reminder
// clock-time of medicine, in order. A failing clock-time does not stop the
// others and nothing already submitted is rolled back. The returned ids are
// the ones scheduled and recorded; the error joins every per-clock-time
// failure as *ClockTimeError.
func (s *Service) ScheduleAllReminders(ctx context.Context, medicine *domain.Medicine) ([]domain.NotificationID, error) {
	if medicine == nil {
		return nil, ErrNilMedicine
	}
	if medicine.ID == "" {
		return nil, domain.ErrMedicineIDMissing
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := tracing.StartScheduleSpan(ctx, medicine.ID, len(medicine.ReminderTimes))
	defer span.End()

	start := time.Now()

	unlock, err := s.locks.Lock(ctx, medicine.ID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("waiting for medicine %s: %w", medicine.ID, err)
	}
	defer unlock()

	cad := s.cadences.Of(medicine.ScheduleType)
	interval := s.cadences.RepeatInterval(medicine.ScheduleType)

	ids := make([]domain.NotificationID, 0, len(medicine.ReminderTimes))
	var errs []error

	for _, raw := range medicine.ReminderTimes {
		id, err := s.scheduleOne(ctx, medicine, raw, cad, interval)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, id)
	}

	joined := errors.Join(errs...)
	tracing.RecordScheduleResult(span, len(ids), len(errs), joined)
	s.reminderMetrics.RecordOperationDuration(ctx, domain.OperationSchedule, time.Since(start), len(errs) == 0)
	s.recordEvent(ctx, domain.ReminderEventRecord{
		MedicineID:     medicine.ID,
		Operation:      domain.OperationSchedule,
		Cadence:        cad.String(),
		RequestedCount: len(medicine.ReminderTimes),
		SucceededCount: len(ids),
		FailedCount:    len(errs),
	})

	logAttrs := []any{
		slog.String("medicine_id", medicine.ID),
		slog.Int("scheduled_count", len(ids)),
		slog.Int("failed_count", len(errs)),
		slog.String("cadence", cad.String()),
	}
	if joined != nil {
		slog.WarnContext(ctx, "some reminders could not be scheduled", append(logAttrs, slog.String("error", joined.Error()))...)
	} else {
		slog.InfoContext(ctx, "reminders scheduled", logAttrs...)
	}

	return ids, joined
}

func (s *Service) scheduleOne(ctx context.Context, medicine *domain.Medicine, raw string, cad domain.Cadence, interval int) (domain.NotificationID, error) {
	ctx, span := tracing.StartClockTimeSpan(ctx, medicine.ID, raw)
	defer span.End()

	fail := func(stage string, err error) (domain.NotificationID, error) {
		s.reminderMetrics.RecordFailure(ctx, stage)
		tracing.RecordError(span, err)
		slog.WarnContext(ctx, "failed to schedule reminder",
			slog.String("medicine_id", medicine.ID),
			slog.String("clock_time", raw),
			slog.String("stage", stage),
			slog.String("error", err.Error()),
		)
		return 0, &ClockTimeError{ClockTime: raw, Stage: stage, Err: err}
	}

	clock, err := domain.ParseClockTime(raw)
	if err != nil {
		return fail(metrics.StageParse, err)
	}

	fireAt := s.fireTimes.FirstFireTime(medicine.StartDate, clock)

	id, err := s.allocator.Allocate(ctx)
	if err != nil {
		return fail(metrics.StageAllocate, err)
	}

	req := domain.NewReminderRequest(id, medicine, fireAt, cad, interval)
	tracing.RecordFireTime(span, id.String(), fireAt, cad.String())

	if _, err := s.notifier.Schedule(ctx, req); err != nil {
		return fail(metrics.StageSubmit, err)
	}

	// The notification is live on the platform from here on; a registry
	// failure leaves it untracked.
	if err := s.registry.Record(ctx, medicine.ID, clock, id); err != nil {
		return fail(metrics.StageRecord, err)
	}

	s.reminderMetrics.RecordScheduled(ctx, cad.String(), fireAt.Sub(s.fireTimes.Now()))
	tracing.RecordError(span, nil)

	slog.DebugContext(ctx, "reminder scheduled",
		slog.String("medicine_id", medicine.ID),
		slog.String("clock_time", clock.String()),
		slog.String("notification_id", id.String()),
		slog.Time("fire_at", fireAt),
	)

	return id, nil
}

// CancelMedicineNotifications cancels every notification recorded for
// medicineID and forgets them. Cancels are best-effort: one failure does not
// stop the rest, and the registry entry is cleared regardless. An unknown
// medicine is a no-op.
func (s *Service) CancelMedicineNotifications(ctx context.Context, medicineID string) error {
	if medicineID == "" {
		return domain.ErrMedicineIDMissing
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := tracing.StartCancelSpan(ctx, medicineID)
	defer span.End()

	start := time.Now()

	unlock, err := s.locks.Lock(ctx, medicineID)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("waiting for medicine %s: %w", medicineID, err)
	}
	defer unlock()

	ids, err := s.registry.AllIDsFor(ctx, medicineID)
	if err != nil {
		s.reminderMetrics.RecordFailure(ctx, metrics.StageRegistry)
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to load reminders for cancellation",
			slog.String("medicine_id", medicineID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("load reminders of medicine %s: %w", medicineID, err)
	}

	if len(ids) == 0 {
		tracing.RecordCancelResult(span, 0, 0, nil)
		slog.DebugContext(ctx, "no reminders to cancel",
			slog.String("medicine_id", medicineID),
		)
		return nil
	}

	var errs []error
	for _, id := range ids {
		if err := s.notifier.Cancel(ctx, id); err != nil {
			s.reminderMetrics.RecordFailure(ctx, metrics.StageCancel)
			slog.WarnContext(ctx, "failed to cancel reminder",
				slog.String("medicine_id", medicineID),
				slog.String("notification_id", id.String()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, &CancelError{NotificationID: id, Err: err})
		}
	}
	cancelled := len(ids) - len(errs)
	s.reminderMetrics.RecordCancelled(ctx, cancelled)

	if err := s.registry.Clear(ctx, medicineID); err != nil {
		s.reminderMetrics.RecordFailure(ctx, metrics.StageRegistry)
		slog.ErrorContext(ctx, "failed to clear reminder registry",
			slog.String("medicine_id", medicineID),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("clear reminders of medicine %s: %w", medicineID, err))
	}

	joined := errors.Join(errs...)
	tracing.RecordCancelResult(span, cancelled, len(ids)-cancelled, joined)
	s.reminderMetrics.RecordOperationDuration(ctx, domain.OperationCancel, time.Since(start), joined == nil)
	s.recordEvent(ctx, domain.ReminderEventRecord{
		MedicineID:     medicineID,
		Operation:      domain.OperationCancel,
		RequestedCount: len(ids),
		SucceededCount: cancelled,
		FailedCount:    len(ids) - cancelled,
	})

	slog.InfoContext(ctx, "reminders cancelled",
		slog.String("medicine_id", medicineID),
		slog.Int("cancelled_count", cancelled),
		slog.Int("failed_count", len(ids)-cancelled),
	)

	return joined
}

// Reminders returns the recorded clock-time to notification id mapping.
func (s *Service) Reminders(ctx context.Context, medicineID string) (map[string]domain.NotificationID, error) {
	if medicineID == "" {
		return nil, domain.ErrMedicineIDMissing
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.registry.Entries(ctx, medicineID)
}

func (s *Service) recordEvent(ctx context.Context, record domain.ReminderEventRecord) {
	if s.recorder == nil {
		return
	}

	record.OccurredAt = s.fireTimes.Now()

	// the operation context may already be past its deadline
	if err := s.recorder.RecordEvents(context.WithoutCancel(ctx), []domain.ReminderEventRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record reminder event",
			slog.String("medicine_id", record.MedicineID),
			slog.String("operation", record.Operation),
			slog.String("error", err.Error()),
		)
	}
}
