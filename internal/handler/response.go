package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/notifier"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/reminder"
)

const (
	errTypeValidation   = "validation_error"
	errTypeUnauthorized = "unauthorized"
	errTypeUnavailable  = "unavailable"
	errTypeUpstream     = "upstream_error"
	errTypeTimeout      = "timeout"
	errTypeProcessing   = "processing_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ClockTimeFailure describes one reminder clock-time that could not be
// scheduled.
type ClockTimeFailure struct {
	ClockTime string `json:"clock_time"`
	Stage     string `json:"stage"`
	Message   string `json:"message"`
}

type ScheduleResponse struct {
	MedicineID      string             `json:"medicine_id"`
	NotificationIDs []string           `json:"notification_ids"`
	Failed          int                `json:"failed"`
	Errors          []ClockTimeFailure `json:"errors,omitempty"`
}

type CancelResponse struct {
	MedicineID string `json:"medicine_id"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

type RemindersResponse struct {
	MedicineID string            `json:"medicine_id"`
	Reminders  map[string]string `json:"reminders"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

func notificationIDStrings(ids []domain.NotificationID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func newScheduleResponse(medicineID string, ids []domain.NotificationID, err error) ScheduleResponse {
	failures := reminder.ClockTimeErrors(err)

	resp := ScheduleResponse{
		MedicineID:      medicineID,
		NotificationIDs: notificationIDStrings(ids),
		Failed:          len(failures),
	}
	for _, f := range failures {
		resp.Errors = append(resp.Errors, ClockTimeFailure{
			ClockTime: f.ClockTime,
			Stage:     f.Stage,
			Message:   f.Err.Error(),
		})
	}
	return resp
}

// scheduleStatus maps a schedule outcome to an HTTP status. An expired
// operation timeout is 504 even when some clock-times made it. Otherwise
// partial success is 200 with the failures listed, and nothing scheduled out
// of a non-empty request is 503 while the platform breaker is open and 502
// otherwise.
func scheduleStatus(ids []domain.NotificationID, err error) int {
	switch {
	case err == nil:
		return http.StatusCreated
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case len(ids) > 0:
		return http.StatusOK
	case notifier.IsCircuitOpen(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// respondServiceError handles errors that are not per-clock-time failures.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMedicineIDMissing), errors.Is(err, domain.ErrInvalidMedicine), errors.Is(err, reminder.ErrNilMedicine):
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, errTypeTimeout, err.Error())
	case notifier.IsCircuitOpen(err):
		respondError(c, http.StatusServiceUnavailable, errTypeUnavailable, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, errTypeProcessing, err.Error())
	}
}
