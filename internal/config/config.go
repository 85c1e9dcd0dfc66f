package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// configFileEnv names an optional YAML file. Its keys are the lower-cased
// environment variable names, e.g. `redis_addr: localhost:6379`.
const configFileEnv = "REMINDER_CONFIG_FILE"

type Config struct {
	Port        string
	LogLevel    slog.Level
	MedicineAPI *MedicineAPIConfig
	TaskQueue   TaskQueueConfig
	Redis       *RedisConfig
	Reminder    *ReminderConfig
	Recorder    *RecorderConfig
}

// Load layers defaults, the optional config file and the environment, in
// that order of precedence (environment wins). Local builds read .env first.
func Load() (*Config, error) {
	loadDotEnv()

	k := koanf.New(".")

	if err := k.Load(newDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	return fromKoanf(k)
}

// envKey lower-cases variable names and drops empty values so they do not
// shadow defaults.
func envKey(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(key), value
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	redisConfig, err := loadRedisConfig(k)
	if err != nil {
		return nil, err
	}

	reminderConfig, err := loadReminderConfig(k)
	if err != nil {
		return nil, err
	}

	taskQueueConfig, err := loadTaskQueueConfig(k)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        k.String("port"),
		LogLevel:    ParseLogLevel(k.String("log_level")),
		MedicineAPI: loadMedicineAPIConfig(k),
		TaskQueue:   taskQueueConfig,
		Redis:       redisConfig,
		Reminder:    reminderConfig,
		Recorder:    loadRecorderConfig(k),
	}, nil
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func intValue(k *koanf.Koanf, key string) (int, error) {
	raw := strings.TrimSpace(k.String(key))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", strings.ToUpper(key), ErrInvalidInteger)
	}
	return v, nil
}

func durationValue(k *koanf.Koanf, key string) (time.Duration, error) {
	raw := strings.TrimSpace(k.String(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", strings.ToUpper(key), ErrInvalidDuration)
	}
	return d, nil
}
