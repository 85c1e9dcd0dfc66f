package cadence

import (
	"strings"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

const (
	// RepeatInterval is the number of cadence units between two fires.
	// Custom intervals such as "every 2 days" are not supported.
	RepeatInterval = 1
)

type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Of maps a free-form schedule type label to a cadence. Unknown and empty
// labels fall back to daily.
func (m *Mapper) Of(scheduleType string) domain.Cadence {
	if strings.EqualFold(strings.TrimSpace(scheduleType), domain.ScheduleTypeWeekly) {
		return domain.CadenceWeekly
	}
	return domain.CadenceDaily
}

func (m *Mapper) RepeatInterval(_ string) int {
	return RepeatInterval
}
