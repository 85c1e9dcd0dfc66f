package config

import "errors"

var (
	ErrRedisAddrMissing        = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB          = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidTimezone         = errors.New("REMINDER_TIMEZONE must be an IANA time zone name")
	ErrInvalidOperationTimeout = errors.New("REMINDER_OPERATION_TIMEOUT must be a positive duration")
	ErrInvalidInteger          = errors.New("value must be a valid integer")
	ErrInvalidDuration         = errors.New("value must be a valid duration")
)
