//go:build !gcloud

package notifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/tracing"
)

type PrimindTasksClient struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	guard      guardedCaller
}

func NewPrimindTasksClient(baseURL, queueName string, maxRetries int, breakerCfg BreakerConfig) *PrimindTasksClient {
	return &PrimindTasksClient{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		guard: newGuardedCaller("primind-tasks", maxRetries, breakerCfg),
	}
}

var _ Notifier = (*PrimindTasksClient)(nil)

func (c *PrimindTasksClient) queueURL() string {
	if c.queueName != "" && c.queueName != "default" {
		return fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}
	return fmt.Sprintf("%s/tasks", c.baseURL)
}

func (c *PrimindTasksClient) Schedule(ctx context.Context, req *domain.NotificationRequest) (*ScheduleResponse, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	payload, err := json.Marshal(newReminderPayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	primindReq := PrimindTaskRequest{
		Task: PrimindTask{
			Name: taskName(req.ID),
			HTTPRequest: PrimindHTTPRequest{
				Body: base64.StdEncoding.EncodeToString(payload),
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
		},
	}
	if !req.FireAt.IsZero() {
		primindReq.Task.ScheduleTime = req.FireAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(primindReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal primind request: %w", err)
	}

	var resp *ScheduleResponse
	err = c.guard.call(ctx, "schedule", req.ID, func(attempt int) error {
		r, err := c.doSchedule(ctx, reqBody, req, attempt)
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

func (c *PrimindTasksClient) Cancel(ctx context.Context, id domain.NotificationID) error {
	return c.guard.call(ctx, "cancel", id, func(int) error {
		return c.doCancel(ctx, id)
	})
}

func (c *PrimindTasksClient) doSchedule(ctx context.Context, reqBody []byte, req *domain.NotificationRequest, attempt int) (*ScheduleResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queueURL(), bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.WarnContext(ctx, "failed to send request to Primind Tasks",
			slog.String("notification_id", req.ID.String()),
			slog.String("medicine_id", req.MedicineID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict && attempt > 0 {
		// an earlier attempt was committed but its response was lost
		slog.InfoContext(ctx, "reminder task already registered by an earlier attempt",
			slog.String("task_name", taskName(req.ID)),
			slog.String("notification_id", req.ID.String()),
			slog.String("medicine_id", req.MedicineID),
			slog.Int("attempt", attempt+1),
		)
		return existingTaskResponse(req), nil
	}
	if resp.StatusCode == http.StatusConflict {
		return nil, fmt.Errorf("%w: %s", ErrTaskExists, taskName(req.ID))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.WarnContext(ctx, "unexpected status code from Primind Tasks",
			slog.String("notification_id", req.ID.String()),
			slog.String("medicine_id", req.MedicineID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var primindResp PrimindTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&primindResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, primindResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, primindResp.CreateTime)

	slog.InfoContext(ctx, "reminder task registered to Primind Tasks",
		slog.String("task_name", primindResp.Name),
		slog.String("notification_id", req.ID.String()),
		slog.String("medicine_id", req.MedicineID),
	)

	return &ScheduleResponse{
		Name:         primindResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *PrimindTasksClient) doCancel(ctx context.Context, id domain.NotificationID) error {
	url := fmt.Sprintf("%s/%s", c.queueURL(), taskName(id))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	tracing.InjectToHTTPRequest(ctx, httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		slog.InfoContext(ctx, "reminder task deleted from Primind Tasks",
			slog.String("notification_id", id.String()),
		)
		return nil
	case http.StatusNotFound:
		// already fired or never registered
		slog.DebugContext(ctx, "reminder task not found, treating as cancelled",
			slog.String("notification_id", id.String()),
		)
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}
