//go:build !gcloud

package notifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

func testRequest() *domain.NotificationRequest {
	return &domain.NotificationRequest{
		ID:             42,
		Title:          domain.ReminderTitle,
		Body:           "Time to take Aspirin (100mg)",
		FireAt:         time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC),
		Cadence:        domain.CadenceDaily,
		RepeatInterval: 1,
		ExpiresAt:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		MedicineID:     "42",
		ChannelID:      domain.ReminderChannelID,
		AllowWhileIdle: true,
	}
}

func TestPrimindTasksClient_Schedule(t *testing.T) {
	var got PrimindTaskRequest
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(PrimindTaskResponse{
			Name:         got.Task.Name,
			ScheduleTime: got.Task.ScheduleTime,
			CreateTime:   "2024-01-05T10:00:00Z",
		})
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "reminders", 1, BreakerConfig{})

	resp, err := client.Schedule(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if gotPath != "/tasks/reminders" {
		t.Errorf("path = %q, want /tasks/reminders", gotPath)
	}
	if got.Task.Name != "medicine-reminder-42" {
		t.Errorf("task name = %q", got.Task.Name)
	}
	if got.Task.ScheduleTime != "2024-01-06T08:00:00Z" {
		t.Errorf("schedule time = %q", got.Task.ScheduleTime)
	}
	if !resp.ScheduleTime.Equal(time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("response schedule time = %v", resp.ScheduleTime)
	}

	raw, err := base64.StdEncoding.DecodeString(got.Task.HTTPRequest.Body)
	if err != nil {
		t.Fatalf("body is not base64: %v", err)
	}
	var payload reminderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.NotificationID != "42" || payload.MedicineID != "42" {
		t.Errorf("payload ids = %q/%q", payload.NotificationID, payload.MedicineID)
	}
	if payload.RepeatType != "day" || payload.RepeatTime != 1 {
		t.Errorf("payload repeat = %s/%d", payload.RepeatType, payload.RepeatTime)
	}
	if payload.ChannelID != "medicine-reminders" || !payload.AllowWhileIdle {
		t.Errorf("payload channel = %q allowWhileIdle=%v", payload.ChannelID, payload.AllowWhileIdle)
	}
}

func TestPrimindTasksClient_ScheduleRetries(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name":"medicine-reminder-42"}`))
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "", 3, BreakerConfig{FailureThreshold: 10})

	if _, err := client.Schedule(context.Background(), testRequest()); err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestPrimindTasksClient_ScheduleConflictAfterLostResponse(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// committed upstream, but the gateway failed the response
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "", 3, BreakerConfig{FailureThreshold: 10})

	req := testRequest()
	resp, err := client.Schedule(context.Background(), req)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
	if resp.Name != "medicine-reminder-42" || !resp.ScheduleTime.Equal(req.FireAt) {
		t.Errorf("resp = %+v", resp)
	}
}

func TestPrimindTasksClient_ScheduleConflictOnFirstAttempt(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "", 3, BreakerConfig{FailureThreshold: 1})

	for range 2 {
		_, err := client.Schedule(context.Background(), testRequest())
		if !errors.Is(err, ErrTaskExists) {
			t.Fatalf("Schedule() error = %v, want ErrTaskExists", err)
		}
	}
	// not retried and not counted against the breaker
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestPrimindTasksClient_ScheduleFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "", 2, BreakerConfig{FailureThreshold: 10})

	_, err := client.Schedule(context.Background(), testRequest())
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("Schedule() error = %v, want ErrUnexpectedStatus", err)
	}
}

func TestPrimindTasksClient_CircuitOpens(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewPrimindTasksClient(srv.URL, "", 1, BreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	})

	for range 2 {
		_, _ = client.Schedule(context.Background(), testRequest())
	}

	_, err := client.Schedule(context.Background(), testRequest())
	if !IsCircuitOpen(err) {
		t.Fatalf("Schedule() error = %v, want circuit open", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (third rejected by breaker)", calls.Load())
	}
}

func TestPrimindTasksClient_ScheduleNilRequest(t *testing.T) {
	client := NewPrimindTasksClient("http://127.0.0.1:0", "", 1, BreakerConfig{})

	if _, err := client.Schedule(context.Background(), nil); !errors.Is(err, ErrNilRequest) {
		t.Errorf("Schedule(nil) error = %v, want ErrNilRequest", err)
	}
}

func TestPrimindTasksClient_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "ok", status: http.StatusOK},
		{name: "already gone", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewPrimindTasksClient(srv.URL, "", 1, BreakerConfig{})

			err := client.Cancel(context.Background(), 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Cancel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if gotMethod != http.MethodDelete {
				t.Errorf("method = %s, want DELETE", gotMethod)
			}
			if gotPath != "/tasks/medicine-reminder-7" {
				t.Errorf("path = %q", gotPath)
			}
		})
	}
}

func TestRepeatType(t *testing.T) {
	if got := repeatType(domain.CadenceWeekly); got != "week" {
		t.Errorf("repeatType(weekly) = %q", got)
	}
	if got := repeatType(domain.CadenceDaily); got != "day" {
		t.Errorf("repeatType(daily) = %q", got)
	}
}
