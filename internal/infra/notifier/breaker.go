package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

type BreakerConfig struct {
	Name             string
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

func newBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// a name conflict is an answer from a healthy platform
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrTaskExists)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("notification platform circuit state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// guardedCaller runs platform calls through the breaker with bounded
// exponential-backoff retries.
type guardedCaller struct {
	platform   string
	breaker    *gobreaker.CircuitBreaker
	maxRetries int
}

func newGuardedCaller(platform string, maxRetries int, cfg BreakerConfig) guardedCaller {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if cfg.Name == "" {
		cfg.Name = platform
	}
	return guardedCaller{
		platform:   platform,
		breaker:    newBreaker(cfg),
		maxRetries: maxRetries,
	}
}

// call runs fn until it succeeds, the breaker rejects it or the retries run
// out. fn receives the zero-based attempt number.
func (g guardedCaller) call(ctx context.Context, op string, id domain.NotificationID, fn func(attempt int) error) error {
	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := backoffFor(attempt)
			slog.DebugContext(ctx, "retrying notification platform request",
				slog.String("platform", g.platform),
				slog.String("operation", op),
				slog.String("notification_id", id.String()),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		_, err := g.breaker.Execute(func() (interface{}, error) {
			return nil, fn(attempt)
		})
		if err == nil {
			return nil
		}
		if isBreakerRejection(err) {
			return fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		if errors.Is(err, ErrTaskExists) {
			return err
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for notification platform request",
		slog.String("platform", g.platform),
		slog.String("operation", op),
		slog.String("notification_id", id.String()),
		slog.Int("max_retries", g.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return fmt.Errorf("failed to %s task after %d retries: %w", op, g.maxRetries, lastErr)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// IsCircuitOpen reports whether err came from a call rejected while the
// platform breaker was open.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

func backoffFor(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 100 * time.Millisecond
}
