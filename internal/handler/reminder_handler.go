package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/reminder"
)

// ReminderHandler exposes scheduling, cancellation and lookup of the
// reminders of one medicine.
type ReminderHandler struct {
	scheduler ReminderScheduler
	loc       *time.Location
}

func NewReminderHandler(scheduler ReminderScheduler, loc *time.Location) *ReminderHandler {
	if loc == nil {
		loc = time.Local
	}

	return &ReminderHandler{
		scheduler: scheduler,
		loc:       loc,
	}
}

// HandleSchedule schedules every reminder of the medicine snapshot in the
// body. The path id wins over any id in the body.
func (h *ReminderHandler) HandleSchedule(c *gin.Context) {
	ctx := c.Request.Context()
	medicineID := c.Param("id")

	var payload medicineapi.MedicinePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
		return
	}

	medicine, err := payload.ToDomain(h.loc)
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
		return
	}
	medicine.ID = medicineID

	if err := medicine.Validate(); err != nil {
		slog.WarnContext(ctx, "medicine validation failed",
			slog.String("medicine_id", medicineID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
		return
	}

	h.schedule(c, medicine)
}

func (h *ReminderHandler) schedule(c *gin.Context, medicine *domain.Medicine) {
	ctx := c.Request.Context()

	ids, err := h.scheduler.ScheduleAllReminders(ctx, medicine)
	if err != nil && len(reminder.ClockTimeErrors(err)) == 0 {
		slog.ErrorContext(ctx, "failed to schedule reminders",
			slog.String("medicine_id", medicine.ID),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(scheduleStatus(ids, err), newScheduleResponse(medicine.ID, ids, err))
}

// HandleCancel cancels every reminder of the medicine. Unknown medicines
// succeed.
func (h *ReminderHandler) HandleCancel(c *gin.Context) {
	ctx := c.Request.Context()
	medicineID := c.Param("id")

	if err := h.scheduler.CancelMedicineNotifications(ctx, medicineID); err != nil {
		slog.ErrorContext(ctx, "failed to cancel reminders",
			slog.String("medicine_id", medicineID),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelResponse{
		MedicineID: medicineID,
		Success:    true,
		Message:    "reminders cancelled",
	})
}

func (h *ReminderHandler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()
	medicineID := c.Param("id")

	entries, err := h.scheduler.Reminders(ctx, medicineID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reminders",
			slog.String("medicine_id", medicineID),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	reminders := make(map[string]string, len(entries))
	for clock, id := range entries {
		reminders[clock] = id.String()
	}

	c.JSON(http.StatusOK, RemindersResponse{
		MedicineID: medicineID,
		Reminders:  reminders,
	})
}

// Register mounts the reminder routes on r.
func (h *ReminderHandler) Register(r gin.IRoutes) {
	r.POST("/medicines/:id/reminders", h.HandleSchedule)
	r.DELETE("/medicines/:id/reminders", h.HandleCancel)
	r.GET("/medicines/:id/reminders", h.HandleList)
}
