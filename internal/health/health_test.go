package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/grpchealth"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "ping")
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name       string
		pinger     redisPinger
		wantStatus int
		wantHealth Status
	}{
		{name: "redis up", pinger: fakePinger{}, wantStatus: http.StatusOK, wantHealth: StatusHealthy},
		{name: "redis down", pinger: fakePinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantHealth: StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			NewChecker(tt.pinger, "test").RegisterGin(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body HealthStatus
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantHealth || body.Checks["redis"].Status != tt.wantHealth {
				t.Errorf("body = %+v", body)
			}
			if body.Version != "test" {
				t.Errorf("version = %q", body.Version)
			}
		})
	}
}

func TestLiveHandler(t *testing.T) {
	r := gin.New()
	NewChecker(fakePinger{err: errors.New("down")}, "test").RegisterGin(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on redis, status = %d", w.Code)
	}
}

func TestGRPCChecker(t *testing.T) {
	tests := []struct {
		name    string
		pinger  redisPinger
		service string
		want    grpchealth.Status
	}{
		{name: "serving", pinger: fakePinger{}, want: grpchealth.StatusServing},
		{name: "named service", pinger: fakePinger{}, service: ServiceName, want: grpchealth.StatusServing},
		{name: "not serving", pinger: fakePinger{err: errors.New("down")}, want: grpchealth.StatusNotServing},
		{name: "unknown service", pinger: fakePinger{}, service: "other.Service", want: grpchealth.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewChecker(tt.pinger, "test").GRPCChecker().Check(context.Background(), &grpchealth.CheckRequest{Service: tt.service})
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if resp.Status != tt.want {
				t.Errorf("Status = %v, want %v", resp.Status, tt.want)
			}
		})
	}
}

func TestGRPCHealthOverHTTP(t *testing.T) {
	r := gin.New()
	NewChecker(fakePinger{}, "test").RegisterGin(r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/grpc.health.v1.Health/Check", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "SERVING" {
		t.Errorf("status = %q, want SERVING", body.Status)
	}
}
