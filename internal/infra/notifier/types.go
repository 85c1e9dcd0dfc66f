package notifier

import (
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

type ScheduleResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

// reminderPayload is the body delivered to the push worker when a task
// fires. The worker re-enqueues the next occurrence until ExpiresAt.
type reminderPayload struct {
	NotificationID string    `json:"notification_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	MedicineID     string    `json:"medicine_id"`
	FireAt         time.Time `json:"fire_at"`
	RepeatType     string    `json:"repeat_type"`
	RepeatTime     int       `json:"repeat_time"`
	ExpiresAt      time.Time `json:"expires_at"`
	ChannelID      string    `json:"channel_id"`
	AllowWhileIdle bool      `json:"allow_while_idle"`
}

func newReminderPayload(req *domain.NotificationRequest) reminderPayload {
	return reminderPayload{
		NotificationID: req.ID.String(),
		Title:          req.Title,
		Message:        req.Body,
		MedicineID:     req.MedicineID,
		FireAt:         req.FireAt,
		RepeatType:     repeatType(req.Cadence),
		RepeatTime:     req.RepeatInterval,
		ExpiresAt:      req.ExpiresAt,
		ChannelID:      req.ChannelID,
		AllowWhileIdle: req.AllowWhileIdle,
	}
}

// repeatType maps a cadence to the unit names push clients understand.
func repeatType(c domain.Cadence) string {
	if c == domain.CadenceWeekly {
		return "week"
	}
	return "day"
}

// taskName is the platform-side name of a reminder task; cancelling by
// notification id relies on it being deterministic.
func taskName(id domain.NotificationID) string {
	return "medicine-reminder-" + id.String()
}

// existingTaskResponse describes a task that was created by an earlier
// attempt whose response never arrived.
func existingTaskResponse(req *domain.NotificationRequest) *ScheduleResponse {
	return &ScheduleResponse{
		Name:         taskName(req.ID),
		ScheduleTime: req.FireAt,
	}
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
