package firetime

import (
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

// Calculator computes the first instant a reminder clock-time fires.
// Calendar arithmetic happens in loc, the zone the patient lives in.
type Calculator struct {
	loc *time.Location
	now func() time.Time
}

func NewCalculator(loc *time.Location, now func() time.Time) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Calculator{
		loc: loc,
		now: now,
	}
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Now is the calculator's clock, in its location.
func (c *Calculator) Now() time.Time {
	return c.now().In(c.loc)
}

// FirstFireTime returns startDate's calendar day at clock when that is not
// in the past. Otherwise it returns today's occurrence of clock, or
// tomorrow's if today's has already passed.
func (c *Calculator) FirstFireTime(startDate time.Time, clock domain.ClockTime) time.Time {
	now := c.now().In(c.loc)

	candidate := c.atClock(startDate.In(c.loc), clock)
	if !candidate.Before(now) {
		return candidate
	}

	today := c.atClock(now, clock)
	if today.Before(now) {
		today = today.AddDate(0, 0, 1)
	}

	return today
}

func (c *Calculator) atClock(day time.Time, clock domain.ClockTime) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, clock.Hour, clock.Minute, 0, 0, c.loc)
}
