// Package cache is a thin JSON-over-Redis cache used for hot catalog reads
// and as the shared Redis client for the cart store and queue driver.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bargaoui/rideaux/config"
)

var RDB *redis.Client
var Ctx = context.Background()

// Connect initializes the shared Redis client from config. An empty
// REDIS_ADDR leaves the client nil and every consumer falls back to its
// in-memory path.
func Connect() {
	addr := config.RedisAddr()
	if addr == "" {
		return
	}
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.RedisPassword(),
	})
}

// Get loads key into dest. Returns false on miss, connection error, or when
// the client is not connected (cache is best-effort).
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}

	return true
}

// Set stores value under key with a TTL. A nil client is a no-op.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Del removes keys. A nil client is a no-op.
func Del(keys ...string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(Ctx, keys...).Err()
}
