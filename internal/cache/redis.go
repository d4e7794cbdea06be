package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/maabu025/book-hubs/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects the shared client. An empty REDIS_ADDR leaves the
// cache disabled; all helpers no-op on a nil client.
func InitRedis(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Println("[redis] no address configured, cache disabled")
		return
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("[redis] ping failed: %v", err)
	}

	log.Println("[redis] connected")
}

// GetJSON reads a key and, if present, unmarshals the stored JSON into dest.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Del removes keys, e.g. to invalidate cached listings after a write.
func Del(ctx context.Context, keys ...string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
