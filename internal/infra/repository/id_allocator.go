package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

const (
	lastNotificationIDKey = "lastNotificationId"
)

type idAllocator struct {
	client *redis.Client
}

func NewIDAllocator(client *redis.Client) domain.IDAllocator {
	return &idAllocator{
		client: client,
	}
}

// Allocate increments the persisted counter and returns the new value.
// INCR treats a missing key as zero and is atomic, so concurrent callers
// never receive the same id.
func (a *idAllocator) Allocate(ctx context.Context) (domain.NotificationID, error) {
	val, err := a.client.Incr(ctx, lastNotificationIDKey).Result()
	if err != nil {
		if isCounterTypeError(err) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidCounterData, err)
		}
		return 0, fmt.Errorf("failed to allocate notification id: %w", err)
	}

	return domain.NotificationID(val), nil
}

// isCounterTypeError reports whether redis rejected INCR because the stored
// value is not an integer.
func isCounterTypeError(err error) bool {
	var redisErr redis.Error
	if !errors.As(err, &redisErr) {
		return false
	}
	msg := redisErr.Error()
	return strings.HasPrefix(msg, "WRONGTYPE") || strings.Contains(msg, "not an integer")
}
