package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "authkit:session:"

// RedisBackend implements Backend on a Redis hash per session, with the
// session TTL applied to the whole hash.
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBackend creates a Redis-backed session backend.
func NewRedisBackend(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

func (b *RedisBackend) Get(ctx context.Context, sid, key string) (string, error) {
	value, err := b.client.HGet(ctx, redisKeyPrefix+sid, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (b *RedisBackend) Set(ctx context.Context, sid, key, value string) error {
	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, redisKeyPrefix+sid, key, value)
	if b.ttl > 0 {
		pipe.Expire(ctx, redisKeyPrefix+sid, b.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) Delete(ctx context.Context, sid, key string) error {
	return b.client.HDel(ctx, redisKeyPrefix+sid, key).Err()
}

func (b *RedisBackend) Destroy(ctx context.Context, sid string) error {
	return b.client.Del(ctx, redisKeyPrefix+sid).Err()
}
