package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"recarma/internal/domain/vehicle"
	"recarma/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Key layout: vehicle_status:{vehicle_id} -> {"status":"...","updated_at":"..."}
const keyVehicleStatus = "vehicle_status:%s"

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr})
}

// StatusCache mirrors each vehicle's latest lifecycle stage into redis so
// dashboard polling does not hit the primary store. Best-effort only: a
// cache failure is logged and the write path carries on.
type StatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusCache(rdb *redis.Client, cfg config.RedisConfig) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: cfg.StatusCacheTTL}
}

type statusEntry struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *StatusCache) SetStatus(ctx context.Context, vehicleID uuid.UUID, status vehicle.Status) {
	payload, err := json.Marshal(statusEntry{Status: status.String(), UpdatedAt: time.Now()})
	if err != nil {
		return
	}

	key := fmt.Sprintf(keyVehicleStatus, vehicleID)
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache vehicle status", "vehicle_id", vehicleID, "error", err)
	}
}

func (c *StatusCache) GetStatus(ctx context.Context, vehicleID uuid.UUID) (vehicle.Status, bool) {
	key := fmt.Sprintf(keyVehicleStatus, vehicleID)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return "", false
	}

	var entry statusEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return "", false
	}

	status, err := vehicle.NewStatus(entry.Status)
	if err != nil {
		return "", false
	}
	return status, true
}
