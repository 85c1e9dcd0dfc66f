package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

const (
	registryKeyPrefix = "notifications_"

	defaultRecordMaxRetries = 5
)

type reminderRegistry struct {
	client     *redis.Client
	maxRetries int
}

func NewReminderRegistry(client *redis.Client, maxRetries int) domain.ReminderRegistry {
	if maxRetries <= 0 {
		maxRetries = defaultRecordMaxRetries
	}
	return &reminderRegistry{
		client:     client,
		maxRetries: maxRetries,
	}
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func registryKey(medicineID string) string {
	return registryKeyPrefix + medicineID
}

// Record sets clock -> id in the medicine's mapping. The read-modify-write
// runs as a WATCH/MULTI transaction and is retried when another writer
// touched the key in between.
func (r *reminderRegistry) Record(ctx context.Context, medicineID string, clock domain.ClockTime, id domain.NotificationID) error {
	if medicineID == "" {
		return domain.ErrMedicineIDMissing
	}

	key := registryKey(medicineID)

	txf := func(tx *redis.Tx) error {
		entries, err := r.load(ctx, tx, key)
		if err != nil {
			return err
		}

		entries[clock.String()] = id.String()

		data, err := json.Marshal(entries)
		if err != nil {
			return ErrInvalidRegistryData
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("%w: medicine %s", ErrRegistryConflict, medicineID)
}

// AllIDsFor returns the ids ordered by clock-time. Unknown medicines yield
// an empty slice.
func (r *reminderRegistry) AllIDsFor(ctx context.Context, medicineID string) ([]domain.NotificationID, error) {
	entries, err := r.Entries(ctx, medicineID)
	if err != nil {
		return nil, err
	}

	ids := make([]domain.NotificationID, 0, len(entries))
	for _, clock := range slices.Sorted(maps.Keys(entries)) {
		ids = append(ids, entries[clock])
	}

	return ids, nil
}

func (r *reminderRegistry) Entries(ctx context.Context, medicineID string) (map[string]domain.NotificationID, error) {
	if medicineID == "" {
		return nil, domain.ErrMedicineIDMissing
	}

	raw, err := r.load(ctx, r.client, registryKey(medicineID))
	if err != nil {
		return nil, err
	}

	entries := make(map[string]domain.NotificationID, len(raw))
	for clock, rawID := range raw {
		id, err := domain.ParseNotificationID(rawID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRegistryData, err)
		}
		entries[clock] = id
	}

	return entries, nil
}

func (r *reminderRegistry) Clear(ctx context.Context, medicineID string) error {
	if medicineID == "" {
		return domain.ErrMedicineIDMissing
	}

	return r.client.Del(ctx, registryKey(medicineID)).Err()
}

// load reads the stored JSON mapping; a missing key is an empty mapping.
func (r *reminderRegistry) load(ctx context.Context, getter stringGetter, key string) (map[string]string, error) {
	data, err := getter.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, ErrInvalidRegistryData
	}

	return entries, nil
}
