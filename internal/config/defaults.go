package config

import "github.com/knadh/koanf/providers/confmap"

// defaultValues are keyed by the lower-cased environment variable name.
func defaultValues() map[string]any {
	return map[string]any{
		"port":      "8080",
		"log_level": "info",

		redisAddrKey: defaultRedisAddr,
		redisDBKey:   "0",

		reminderTimezoneKey:         "Local",
		reminderOperationTimeoutKey: "15s",
		reminderRegistryRetriesKey:  "5",

		taskQueueNameKey:             "default",
		taskQueueMaxRetriesKey:       "3",
		taskQueueBreakerThresholdKey: "5",
		taskQueueBreakerTimeoutKey:   "30s",

		influxDBURLKey:     "http://localhost:8086",
		influxDBBucketKey:  "reminder_events",
		bigQueryDatasetKey: "reminder_events",
		bigQueryTableKey:   "reminder_events",
	}
}

func newDefaultProvider() *confmap.Confmap {
	return confmap.Provider(defaultValues(), "")
}
