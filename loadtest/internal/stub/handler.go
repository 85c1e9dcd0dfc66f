package stub

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/notifier"
)

// Handler serves a stand-in for the remote medicine API and the Primind
// Tasks queue so the service can run without either.
type Handler struct {
	storage *Storage
	now     func() time.Time
}

func NewHandler(storage *Storage) *Handler {
	return &Handler{storage: storage, now: time.Now}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/medicines/add", h.HandleAddMedicine)
	r.GET("/medicines/user", h.HandleListMedicines)

	r.POST("/tasks", h.HandleCreateTask)
	r.POST("/tasks/:queue", h.HandleCreateTask)
	r.DELETE("/tasks/:queue", h.HandleDeleteTask)
	r.DELETE("/tasks/:queue/:name", h.HandleDeleteTask)
	r.GET("/tasks", h.HandleListTasks)

	r.POST("/reset", h.HandleReset)
	r.POST("/seed", h.HandleSeed)
}

func token(c *gin.Context) (string, bool) {
	t, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || t == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
		return "", false
	}
	return t, true
}

func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.ResetAll()

	slog.Info("reset data")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "token is required"})
		return
	}

	for _, m := range req.Medicines {
		h.storage.AddMedicine(req.Token, m)
	}

	slog.Info("seeded data",
		slog.Int("medicine_count", len(req.Medicines)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":      "seeded",
		"total_count": len(req.Medicines),
	})
}

// POST /medicines/add
func (h *Handler) HandleAddMedicine(c *gin.Context) {
	t, ok := token(c)
	if !ok {
		return
	}

	var m medicineapi.MedicinePayload
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if m.Name == "" || m.Dosage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name and dosage are required"})
		return
	}

	created := h.storage.AddMedicine(t, m)

	slog.Debug("medicine added",
		slog.String("medicine_id", created.MedicineID()),
	)

	c.JSON(http.StatusCreated, AddMedicineResponse{Medicine: created})
}

// GET /medicines/user
func (h *Handler) HandleListMedicines(c *gin.Context) {
	t, ok := token(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.storage.Medicines(t))
}

func (h *Handler) HandleCreateTask(c *gin.Context) {
	var req notifier.PrimindTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	body, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "body must be base64"})
		return
	}

	now := h.now().UTC()
	scheduleTime := now
	if req.Task.ScheduleTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.Task.ScheduleTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid scheduleTime"})
			return
		}
		scheduleTime = parsed.UTC()
	}

	task := Task{
		Name:         req.Task.Name,
		Queue:        c.Param("queue"),
		ScheduleTime: scheduleTime,
		CreateTime:   now,
		Body:         string(body),
	}
	if task.Name == "" {
		task.Name = "task-" + now.Format("20060102150405.000000000")
	}

	if err := h.storage.PutTask(task); err != nil {
		if errors.Is(err, ErrTaskExists) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	slog.Debug("task registered",
		slog.String("task_name", task.Name),
		slog.Time("schedule_time", task.ScheduleTime),
	)

	c.JSON(http.StatusCreated, notifier.PrimindTaskResponse{
		Name:         task.Name,
		ScheduleTime: task.ScheduleTime.Format(time.RFC3339),
		CreateTime:   task.CreateTime.Format(time.RFC3339),
	})
}

// DELETE /tasks/:name or /tasks/:queue/:name
func (h *Handler) HandleDeleteTask(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		name = c.Param("queue")
	}

	if !h.storage.DeleteTask(name) {
		c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleListTasks(c *gin.Context) {
	tasks := h.storage.Tasks()
	c.JSON(http.StatusOK, TasksResponse{Tasks: tasks, Count: len(tasks)})
}
