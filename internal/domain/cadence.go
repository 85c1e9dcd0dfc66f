package domain

// Cadence is the repeat unit handed to the notification platform.
type Cadence string

const (
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

func (c Cadence) String() string {
	return string(c)
}
