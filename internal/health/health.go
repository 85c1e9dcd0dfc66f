package health

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/grpchealth"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Status represents the health status of a service or dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// ServiceName is the name reported to gRPC health clients.
const ServiceName = "primind.medicine_reminder.v1.ReminderService"

// CheckResult represents the health check result for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus represents the overall health status of the service.
type HealthStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Checker performs health checks on service dependencies.
type Checker struct {
	redisClient redisPinger
	version     string
}

func NewChecker(redisClient redisPinger, version string) *Checker {
	return &Checker{
		redisClient: redisClient,
		version:     version,
	}
}

// Check pings every dependency. Redis holds the id counter and registry, so
// the service is unhealthy without it.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.redisClient != nil {
		start := time.Now()
		if err := c.redisClient.Ping(checkCtx).Err(); err != nil {
			status.Status = StatusUnhealthy
			status.Checks["redis"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
		} else {
			status.Checks["redis"] = CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
		}
	}

	return status
}

// LiveHandler returns a Gin handler for liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for readiness probes.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}

// GRPCChecker adapts the checker to the gRPC health protocol. The empty
// service name is the server as a whole.
func (c *Checker) GRPCChecker() grpchealth.Checker {
	return grpcChecker{c}
}

type grpcChecker struct {
	checker *Checker
}

func (g grpcChecker) Check(ctx context.Context, req *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if req.Service != "" && req.Service != ServiceName {
		return &grpchealth.CheckResponse{Status: grpchealth.StatusUnknown}, nil
	}

	if g.checker.Check(ctx).Status != StatusHealthy {
		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}
	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}

// RegisterGin mounts the HTTP probes and the gRPC health service on r.
func (c *Checker) RegisterGin(r gin.IRoutes) {
	r.GET("/health/live", c.LiveHandler())
	r.GET("/health/ready", c.ReadyHandler())
	r.GET("/health", c.ReadyHandler())

	path, handler := grpchealth.NewHandler(c.GRPCChecker())
	r.POST(path+"*method", gin.WrapH(handler))
}
