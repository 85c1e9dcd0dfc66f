package cadence

import (
	"testing"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

func TestMapper_Of(t *testing.T) {
	mapper := NewMapper()

	tests := []struct {
		name         string
		scheduleType string
		want         domain.Cadence
	}{
		{name: "Daily", scheduleType: "Daily", want: domain.CadenceDaily},
		{name: "daily lower case", scheduleType: "daily", want: domain.CadenceDaily},
		{name: "Weekly", scheduleType: "Weekly", want: domain.CadenceWeekly},
		{name: "weekly lower case", scheduleType: "weekly", want: domain.CadenceWeekly},
		{name: "WEEKLY upper case", scheduleType: "WEEKLY", want: domain.CadenceWeekly},
		{name: "weekly with padding", scheduleType: " weekly ", want: domain.CadenceWeekly},
		{name: "empty falls back to daily", scheduleType: "", want: domain.CadenceDaily},
		{name: "monthly falls back to daily", scheduleType: "monthly", want: domain.CadenceDaily},
		{name: "garbage falls back to daily", scheduleType: "every 2 days", want: domain.CadenceDaily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapper.Of(tt.scheduleType); got != tt.want {
				t.Errorf("Of(%q) = %s, want %s", tt.scheduleType, got, tt.want)
			}
		})
	}
}

func TestMapper_RepeatInterval(t *testing.T) {
	mapper := NewMapper()

	for _, scheduleType := range []string{"Daily", "Weekly", "", "every 2 days"} {
		if got := mapper.RepeatInterval(scheduleType); got != 1 {
			t.Errorf("RepeatInterval(%q) = %d, want 1", scheduleType, got)
		}
	}
}
