//go:build gcloud

package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	guard      guardedCaller
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
	Breaker    BreakerConfig
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		guard:      newGuardedCaller("cloud-tasks", cfg.MaxRetries, cfg.Breaker),
	}, nil
}

var _ Notifier = (*CloudTasksClient)(nil)

func (c *CloudTasksClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.projectID, c.locationID, c.queueID)
}

func (c *CloudTasksClient) taskPath(id domain.NotificationID) string {
	return fmt.Sprintf("%s/tasks/%s", c.queuePath(), taskName(id))
}

func (c *CloudTasksClient) Schedule(ctx context.Context, req *domain.NotificationRequest) (*ScheduleResponse, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	payload, err := json.Marshal(newReminderPayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	cloudTask := &taskspb.Task{
		Name: c.taskPath(req.ID),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}
	if !req.FireAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(req.FireAt)
	}

	createReq := &taskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task:   cloudTask,
	}

	var resp *ScheduleResponse
	err = c.guard.call(ctx, "schedule", req.ID, func(attempt int) error {
		r, err := c.createTask(ctx, createReq, req, attempt)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *CloudTasksClient) createTask(ctx context.Context, createReq *taskspb.CreateTaskRequest, req *domain.NotificationRequest, attempt int) (*ScheduleResponse, error) {
	createdTask, err := c.client.CreateTask(ctx, createReq)
	if status.Code(err) == codes.AlreadyExists {
		if attempt > 0 {
			// an earlier attempt was committed but its response was lost
			slog.InfoContext(ctx, "reminder task already registered by an earlier attempt",
				slog.String("task_name", createReq.GetTask().GetName()),
				slog.String("notification_id", req.ID.String()),
				slog.Int("attempt", attempt+1),
			)
			resp := existingTaskResponse(req)
			resp.Name = createReq.GetTask().GetName()
			return resp, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrTaskExists, createReq.GetTask().GetName(), err)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("notification_id", req.ID.String()),
			slog.String("medicine_id", req.MedicineID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "reminder task registered to Cloud Tasks",
		slog.String("task_name", createdTask.Name),
		slog.String("notification_id", req.ID.String()),
		slog.String("medicine_id", req.MedicineID),
	)

	var scheduleTime, createTime time.Time
	if createdTask.ScheduleTime != nil {
		scheduleTime = createdTask.ScheduleTime.AsTime()
	}
	if createdTask.CreateTime != nil {
		createTime = createdTask.CreateTime.AsTime()
	}

	return &ScheduleResponse{
		Name:         createdTask.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *CloudTasksClient) Cancel(ctx context.Context, id domain.NotificationID) error {
	path := c.taskPath(id)

	return c.guard.call(ctx, "cancel", id, func(int) error {
		err := c.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{Name: path})
		if err == nil {
			slog.InfoContext(ctx, "reminder task deleted from Cloud Tasks",
				slog.String("notification_id", id.String()),
			)
			return nil
		}
		if status.Code(err) == codes.NotFound {
			slog.InfoContext(ctx, "task not found in Cloud Tasks (may have been processed)",
				slog.String("notification_id", id.String()),
			)
			return nil
		}

		slog.WarnContext(ctx, "failed to delete cloud task",
			slog.String("notification_id", id.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to delete cloud task: %w", err)
	})
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
