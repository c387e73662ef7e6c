package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis server, for setups that want swipe
// state shared across machines. Entries never expire; history and
// applications are user records, not a cache.
type Redis struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to Redis at the given URL.
// URL format: redis://localhost:6379
func OpenRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("storage: redis ping failed: %w", err)
	}

	return &Redis{client: client, prefix: "swipehire:"}, nil
}

func (r *Redis) Get(key string, dest any) bool {
	ctx, cancel := opContext()
	defer cancel()

	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("storage: redis read %q: %v", key, err)
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("storage: corrupt entry at %q: %v", key, err)
		return false
	}
	return true
}

func (r *Redis) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: marshaling %q: %v", key, err)
		return
	}

	ctx, cancel := opContext()
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, raw, 0).Err(); err != nil {
		log.Printf("storage: redis write %q: %v", key, err)
	}
}

func (r *Redis) Remove(key string) {
	ctx, cancel := opContext()
	defer cancel()

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		log.Printf("storage: redis delete %q: %v", key, err)
	}
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 3*time.Second)
}
