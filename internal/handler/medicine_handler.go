package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/service/reminder"
)

// MedicineHandler forwards medicine creation and listing to the remote
// healthcare API on behalf of the caller, scheduling reminders for newly
// created medicines.
type MedicineHandler struct {
	medicines medicineapi.MedicineRepository
	reminders *ReminderHandler
	loc       *time.Location
}

// NewMedicineHandler accepts a nil repository; the endpoints then answer 503.
func NewMedicineHandler(medicines medicineapi.MedicineRepository, reminders *ReminderHandler, loc *time.Location) *MedicineHandler {
	if loc == nil {
		loc = time.Local
	}

	return &MedicineHandler{
		medicines: medicines,
		reminders: reminders,
		loc:       loc,
	}
}

type MedicineResponse struct {
	Medicine medicineapi.MedicinePayload `json:"medicine"`
	ScheduleResponse
}

type MedicinesResponse struct {
	Medicines []medicineapi.MedicinePayload `json:"medicines"`
}

func bearerToken(c *gin.Context) (string, bool) {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (h *MedicineHandler) precheck(c *gin.Context) (string, bool) {
	if h.medicines == nil {
		respondError(c, http.StatusServiceUnavailable, errTypeUnavailable, "medicine api is not configured")
		return "", false
	}

	token, ok := bearerToken(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, errTypeUnauthorized, "bearer token required")
		return "", false
	}
	return token, true
}

func respondUpstreamError(c *gin.Context, err error) {
	if errors.Is(err, medicineapi.ErrUnauthorized) {
		respondError(c, http.StatusUnauthorized, errTypeUnauthorized, err.Error())
		return
	}
	respondError(c, http.StatusBadGateway, errTypeUpstream, err.Error())
}

// HandleCreate creates the medicine remotely and then schedules its
// reminders. Missing reminder times and schedule type get the defaults.
func (h *MedicineHandler) HandleCreate(c *gin.Context) {
	ctx := c.Request.Context()

	token, ok := h.precheck(c)
	if !ok {
		return
	}

	var payload medicineapi.MedicinePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
		return
	}

	medicine, err := payload.ToDomain(h.loc)
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
		return
	}
	medicine.ApplyDefaults()

	if err := medicine.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
		return
	}

	created, err := h.medicines.AddMedicine(ctx, token, medicine)
	if err != nil {
		slog.ErrorContext(ctx, "failed to add medicine",
			slog.String("name", medicine.Name),
			slog.String("error", err.Error()),
		)
		respondUpstreamError(c, err)
		return
	}

	slog.InfoContext(ctx, "medicine added",
		slog.String("medicine_id", created.ID),
	)

	ids, err := h.reminders.scheduler.ScheduleAllReminders(ctx, created)
	if err != nil && len(reminder.ClockTimeErrors(err)) == 0 {
		slog.ErrorContext(ctx, "failed to schedule reminders for new medicine",
			slog.String("medicine_id", created.ID),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	status := scheduleStatus(ids, err)
	if status == http.StatusBadGateway || status == http.StatusServiceUnavailable {
		// the medicine exists remotely either way
		status = http.StatusOK
	}

	c.JSON(status, MedicineResponse{
		Medicine:         medicineapi.NewMedicinePayload(created),
		ScheduleResponse: newScheduleResponse(created.ID, ids, err),
	})
}

func (h *MedicineHandler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	token, ok := h.precheck(c)
	if !ok {
		return
	}

	medicines, err := h.medicines.ListUserMedicines(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list medicines",
			slog.String("error", err.Error()),
		)
		respondUpstreamError(c, err)
		return
	}

	resp := MedicinesResponse{Medicines: make([]medicineapi.MedicinePayload, 0, len(medicines))}
	for _, m := range medicines {
		resp.Medicines = append(resp.Medicines, medicineapi.NewMedicinePayload(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MedicineHandler) Register(r gin.IRoutes) {
	r.POST("/medicines", h.HandleCreate)
	r.GET("/medicines", h.HandleList)
}
