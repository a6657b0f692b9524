package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter keeps snapshots as plain string values, no TTL. This is the
// default substrate and the closest server-side analog of the original's
// localStorage.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (a *RedisAdapter) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := a.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (a *RedisAdapter) Save(ctx context.Context, key string, value []byte) error {
	return a.client.Set(ctx, key, value, 0).Err()
}
