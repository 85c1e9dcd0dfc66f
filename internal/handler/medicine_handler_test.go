package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/infra/medicineapi"
)

func newMedicineRouter(repo medicineapi.MedicineRepository, scheduler ReminderScheduler) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/api/v1")
	reminders := NewReminderHandler(scheduler, time.UTC)
	NewMedicineHandler(repo, reminders, time.UTC).Register(v1)
	return r
}

func serveWithToken(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMedicineHandler_CreateAppliesDefaultsAndSchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := medicineapi.NewMockMedicineRepository(ctrl)
	scheduler := NewMockReminderScheduler(ctrl)

	gomock.InOrder(
		repo.EXPECT().
			AddMedicine(gomock.Any(), "tok", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, m *domain.Medicine) (*domain.Medicine, error) {
				if len(m.ReminderTimes) != 3 || m.ReminderTimes[0] != "08:00" {
					t.Errorf("ReminderTimes = %v, want defaults", m.ReminderTimes)
				}
				if m.ScheduleType != domain.ScheduleTypeDaily {
					t.Errorf("ScheduleType = %q", m.ScheduleType)
				}
				created := *m
				created.ID = "99"
				return &created, nil
			}),
		scheduler.EXPECT().
			ScheduleAllReminders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.Medicine) ([]domain.NotificationID, error) {
				if m.ID != "99" {
					t.Errorf("scheduled medicine id = %q", m.ID)
				}
				return []domain.NotificationID{10, 11, 12}, nil
			}),
	)

	body := `{"name":"Aspirin","dosage":"100mg","startDate":"2024-01-01","endDate":"2024-01-10"}`
	w := serveWithToken(newMedicineRouter(repo, scheduler), http.MethodPost, "/api/v1/medicines", body, "tok")

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Medicine        map[string]any `json:"medicine"`
		MedicineID      string         `json:"medicine_id"`
		NotificationIDs []string       `json:"notification_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.MedicineID != "99" || resp.Medicine["id"] != "99" {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.NotificationIDs) != 3 {
		t.Errorf("NotificationIDs = %v", resp.NotificationIDs)
	}
}

func TestMedicineHandler_CreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		body       string
		addErr     error
		wantStatus int
	}{
		{
			name:       "missing token",
			body:       aspirinBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid medicine",
			token:      "tok",
			body:       `{"name":"","dosage":"1","startDate":"2024-01-01","endDate":"2024-01-10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "upstream rejects token",
			token:      "tok",
			body:       aspirinBody,
			addErr:     &medicineapi.APIError{StatusCode: http.StatusUnauthorized, Message: "expired"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "upstream failure",
			token:      "tok",
			body:       aspirinBody,
			addErr:     errors.New("connection reset"),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := medicineapi.NewMockMedicineRepository(ctrl)
			scheduler := NewMockReminderScheduler(ctrl)

			if tt.addErr != nil {
				repo.EXPECT().AddMedicine(gomock.Any(), tt.token, gomock.Any()).Return(nil, tt.addErr)
			}

			w := serveWithToken(newMedicineRouter(repo, scheduler), http.MethodPost, "/api/v1/medicines", tt.body, tt.token)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestMedicineHandler_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduler := NewMockReminderScheduler(ctrl)

	w := serveWithToken(newMedicineRouter(nil, scheduler), http.MethodGet, "/api/v1/medicines", "", "tok")

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestMedicineHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := medicineapi.NewMockMedicineRepository(ctrl)
	scheduler := NewMockReminderScheduler(ctrl)

	repo.EXPECT().ListUserMedicines(gomock.Any(), "tok").Return([]*domain.Medicine{
		{
			ID:            "42",
			Name:          "Aspirin",
			Dosage:        "100mg",
			StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			ReminderTimes: []string{"08:00"},
			ScheduleType:  "Daily",
		},
	}, nil)

	w := serveWithToken(newMedicineRouter(repo, scheduler), http.MethodGet, "/api/v1/medicines", "", "tok")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Medicines []map[string]any `json:"medicines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Medicines) != 1 || resp.Medicines[0]["id"] != "42" || resp.Medicines[0]["startDate"] != "2024-01-01T00:00:00Z" {
		t.Errorf("Medicines = %v", resp.Medicines)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Basic abc", ok: false},
		{header: "Bearer ", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			c.Request.Header.Set("Authorization", tt.header)
		}

		got, ok := bearerToken(c)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}
