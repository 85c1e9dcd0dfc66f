package reminder

import (
	"errors"
	"fmt"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

var ErrNilMedicine = errors.New("medicine is nil")

// ClockTimeError is the failure of one clock-time during scheduling.
type ClockTimeError struct {
	ClockTime string
	Stage     string
	Err       error
}

func (e *ClockTimeError) Error() string {
	return fmt.Sprintf("reminder %q failed at %s: %v", e.ClockTime, e.Stage, e.Err)
}

func (e *ClockTimeError) Unwrap() error {
	return e.Err
}

// CancelError is the failure to cancel one notification.
type CancelError struct {
	NotificationID domain.NotificationID
	Err            error
}

func (e *CancelError) Error() string {
	return fmt.Sprintf("cancel notification %s: %v", e.NotificationID, e.Err)
}

func (e *CancelError) Unwrap() error {
	return e.Err
}

// ClockTimeErrors flattens the per-clock-time failures joined into err.
func ClockTimeErrors(err error) []*ClockTimeError {
	if err == nil {
		return nil
	}

	var out []*ClockTimeError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, ClockTimeErrors(e)...)
		}
		return out
	}

	var cte *ClockTimeError
	if errors.As(err, &cte) {
		out = append(out, cte)
	}
	return out
}
