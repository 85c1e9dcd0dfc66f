package config

import (
	"time"

	"github.com/knadh/koanf/v2"
)

const (
	primindTasksURLKey           = "primind_tasks_url"
	taskQueueNameKey             = "task_queue_name"
	taskQueueMaxRetriesKey       = "task_queue_max_retries"
	taskQueueBreakerThresholdKey = "task_queue_breaker_failure_threshold"
	taskQueueBreakerTimeoutKey   = "task_queue_breaker_open_timeout"

	gcloudProjectIDKey  = "gcloud_project_id"
	gcloudLocationIDKey = "gcloud_location_id"
	gcloudQueueIDKey    = "gcloud_queue_id"
	gcloudTargetURLKey  = "gcloud_target_url"
)

type TaskQueueConfig struct {
	PrimindTasksURL string
	QueueName       string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int

	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration
}

func loadTaskQueueConfig(k *koanf.Koanf) (TaskQueueConfig, error) {
	maxRetries, err := intValue(k, taskQueueMaxRetriesKey)
	if err != nil {
		return TaskQueueConfig{}, err
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}

	threshold, err := intValue(k, taskQueueBreakerThresholdKey)
	if err != nil {
		return TaskQueueConfig{}, err
	}
	if threshold < 0 {
		threshold = 0
	}

	openTimeout, err := durationValue(k, taskQueueBreakerTimeoutKey)
	if err != nil {
		return TaskQueueConfig{}, err
	}

	return TaskQueueConfig{
		PrimindTasksURL: k.String(primindTasksURLKey),
		QueueName:       k.String(taskQueueNameKey),

		GCloudProjectID:  k.String(gcloudProjectIDKey),
		GCloudLocationID: k.String(gcloudLocationIDKey),
		GCloudQueueID:    k.String(gcloudQueueIDKey),
		GCloudTargetURL:  k.String(gcloudTargetURLKey),

		MaxRetries: maxRetries,

		BreakerFailureThreshold: uint32(threshold),
		BreakerOpenTimeout:      openTimeout,
	}, nil
}
