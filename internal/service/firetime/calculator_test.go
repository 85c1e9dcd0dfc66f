package firetime

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCalculator_FirstFireTime_PastStartTodaySlotPassed(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	calc := NewCalculator(time.UTC, fixedNow(now))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 8, Minute: 0})

	want := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FirstFireTime() = %v, want %v", got, want)
	}
}

func TestCalculator_FirstFireTime_PastStartTodaySlotAhead(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	calc := NewCalculator(time.UTC, fixedNow(now))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 14, Minute: 0})

	want := time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FirstFireTime() = %v, want %v", got, want)
	}
}

func TestCalculator_FirstFireTime_FutureStart(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	calc := NewCalculator(time.UTC, fixedNow(now))

	start := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 8, Minute: 0})

	want := time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FirstFireTime() = %v, want %v", got, want)
	}
}

func TestCalculator_FirstFireTime_StartTodaySlotAhead(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	calc := NewCalculator(time.UTC, fixedNow(now))

	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 20, Minute: 30})

	want := time.Date(2024, 1, 5, 20, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FirstFireTime() = %v, want %v", got, want)
	}
}

func TestCalculator_FirstFireTime_ExactlyNow(t *testing.T) {
	now := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	calc := NewCalculator(time.UTC, fixedNow(now))

	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 8, Minute: 0})

	if !got.Equal(now) {
		t.Errorf("FirstFireTime() = %v, want %v", got, now)
	}
}

func TestCalculator_FirstFireTime_ZeroesSeconds(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	calc := NewCalculator(time.UTC, fixedNow(now))

	start := time.Date(2024, 3, 1, 17, 45, 33, 123, time.UTC)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 9, Minute: 15})

	want := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FirstFireTime() = %v, want %v", got, want)
	}
}

func TestCalculator_FirstFireTime_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2024-01-05 23:30 in UTC+9
	now := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)
	calc := NewCalculator(loc, fixedNow(now))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	got := calc.FirstFireTime(start, domain.ClockTime{Hour: 8, Minute: 0})

	want := time.Date(2024, 1, 6, 8, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("FirstFireTime() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("FirstFireTime() location = %v, want %v", got.Location(), loc)
	}
}

func TestCalculator_FirstFireTime_PastStartNeverInPast(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	nows := []time.Time{
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 7, 59, 59, 0, time.UTC),
		time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC),
	}

	for _, now := range nows {
		calc := NewCalculator(time.UTC, fixedNow(now))
		for hour := 0; hour < 24; hour++ {
			for _, minute := range []int{0, 15, 30, 59} {
				clock := domain.ClockTime{Hour: hour, Minute: minute}
				got := calc.FirstFireTime(start, clock)

				if got.Before(now) {
					t.Fatalf("now=%v clock=%s: got %v in the past", now, clock, got)
				}
				if got.Hour() != hour || got.Minute() != minute || got.Second() != 0 {
					t.Fatalf("now=%v clock=%s: got %v with wrong clock", now, clock, got)
				}

				today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
				day := time.Date(got.Year(), got.Month(), got.Day(), 0, 0, 0, 0, time.UTC)
				if !day.Equal(today) && !day.Equal(today.AddDate(0, 0, 1)) {
					t.Fatalf("now=%v clock=%s: got %v, not today or tomorrow", now, clock, got)
				}
			}
		}
	}
}

func TestNewCalculator_Defaults(t *testing.T) {
	calc := NewCalculator(nil, nil)
	if calc.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", calc.Location())
	}
	if calc.now == nil {
		t.Error("now func not defaulted")
	}
}
