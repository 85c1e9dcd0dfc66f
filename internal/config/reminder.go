package config

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/v2"
)

const (
	reminderTimezoneKey         = "reminder_timezone"
	reminderOperationTimeoutKey = "reminder_operation_timeout"
	reminderRegistryRetriesKey  = "reminder_registry_max_retries"
)

type ReminderConfig struct {
	// Location is where start dates and clock-times are interpreted.
	Location         *time.Location
	OperationTimeout time.Duration
	// RegistryMaxRetries bounds optimistic retries of a registry write.
	RegistryMaxRetries int
}

func loadReminderConfig(k *koanf.Koanf) (*ReminderConfig, error) {
	loc, err := time.LoadLocation(k.String(reminderTimezoneKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}

	timeout, err := durationValue(k, reminderOperationTimeoutKey)
	if err != nil {
		return nil, err
	}

	retries, err := intValue(k, reminderRegistryRetriesKey)
	if err != nil {
		return nil, err
	}

	return &ReminderConfig{
		Location:           loc,
		OperationTimeout:   timeout,
		RegistryMaxRetries: retries,
	}, nil
}

func (c *ReminderConfig) Validate() error {
	if c.OperationTimeout <= 0 {
		return ErrInvalidOperationTimeout
	}
	return nil
}
