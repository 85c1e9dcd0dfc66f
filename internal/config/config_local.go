//go:build !gcloud

package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// loadDotEnv reads .env into the process environment without overriding
// variables that are already set.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}
}

// Validate accepts an empty PRIMIND_TASKS_URL; reminders are then only logged.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
