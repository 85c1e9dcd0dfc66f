package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:8-alpine"

// SetupRedisContainer starts a throwaway redis and returns a client for it.
// The test is skipped when no container runtime is available.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, redisImage)
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// FixedClock returns a now func pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}
