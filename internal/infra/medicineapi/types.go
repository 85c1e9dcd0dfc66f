package medicineapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

const dateLayout = "2006-01-02"

// flexibleID accepts both numeric and string identifiers.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexibleID(n.String())
	return nil
}

// MedicinePayload is the wire shape of a medicine, shared by the remote API
// and this service's own endpoints.
type MedicinePayload struct {
	ID            flexibleID `json:"id,omitempty"`
	LegacyID      flexibleID `json:"_id,omitempty"`
	Name          string     `json:"name"`
	Dosage        string     `json:"dosage"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	ReminderTimes []string   `json:"reminderTimes"`
	ScheduleType  string     `json:"scheduleType"`
}

func (p *MedicinePayload) MedicineID() string {
	if p.ID != "" {
		return string(p.ID)
	}
	return string(p.LegacyID)
}

// SetID replaces both id fields with id.
func (p *MedicinePayload) SetID(id string) {
	p.ID = flexibleID(id)
	p.LegacyID = ""
}

// ToDomain converts the payload. Date-only values are read as midnight in
// loc; timestamps keep their instant and are moved into loc.
func (p *MedicinePayload) ToDomain(loc *time.Location) (*domain.Medicine, error) {
	start, err := ParseDate(p.StartDate, loc)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	end, err := ParseDate(p.EndDate, loc)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &domain.Medicine{
		ID:            p.MedicineID(),
		Name:          p.Name,
		Dosage:        p.Dosage,
		StartDate:     start,
		EndDate:       end,
		ReminderTimes: append([]string(nil), p.ReminderTimes...),
		ScheduleType:  p.ScheduleType,
	}, nil
}

func NewMedicinePayload(m *domain.Medicine) MedicinePayload {
	return MedicinePayload{
		ID:            flexibleID(m.ID),
		Name:          m.Name,
		Dosage:        m.Dosage,
		StartDate:     formatDate(m.StartDate),
		EndDate:       formatDate(m.EndDate),
		ReminderTimes: append([]string(nil), m.ReminderTimes...),
		ScheduleType:  m.ScheduleType,
	}
}

// ParseDate reads either a calendar date ("2006-01-02") or an RFC 3339
// timestamp. An empty string yields the zero time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

type addMedicineEnvelope struct {
	Medicine *MedicinePayload `json:"medicine"`
}

type errorResponse struct {
	Message string `json:"message"`
}
