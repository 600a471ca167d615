package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// RedisStorage persists the session under a single Redis key. It serves
// environments where the client runs on ephemeral machines (CI runners,
// shared toolboxes) and a local file would not survive.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	return &RedisStorage{client: client, key: key}
}

// DialRedis initialises a Redis client and validates connectivity with a ping.
func DialRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}
	return raw, nil
}

func (r *RedisStorage) Write(ctx context.Context, data []byte) error {
	// No TTL: token lifetime is entirely delegated to the server.
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisStorage) Erase(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
