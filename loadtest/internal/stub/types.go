package stub

import (
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
)

type AddMedicineResponse struct {
	Medicine medicineapi.MedicinePayload `json:"medicine"`
}

// Task is a reminder task accepted by the stub queue.
type Task struct {
	Name         string    `json:"name"`
	Queue        string    `json:"queue,omitempty"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
	Body         string    `json:"body"`
}

type TasksResponse struct {
	Tasks []Task `json:"tasks"`
	Count int    `json:"count"`
}

type SeedRequest struct {
	Token     string                        `json:"token"`
	Medicines []medicineapi.MedicinePayload `json:"medicines"`
}
