package authn

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTokenPrefix = "authkit:remember:"

// RedisTokenStore implements TokenStore on a Redis set per principal. The
// TTL bounds how long an unused token survives and normally matches the
// remember-me cookie max-age.
type RedisTokenStore[T any] struct {
	client *redis.Client
	userID func(T) string
	ttl    time.Duration
}

// NewRedisTokenStore creates a Redis-backed token store. A ttl of zero
// keeps tokens until dropped.
func NewRedisTokenStore[T any](client *redis.Client, userID func(T) string, ttl time.Duration) *RedisTokenStore[T] {
	return &RedisTokenStore[T]{client: client, userID: userID, ttl: ttl}
}

func (s *RedisTokenStore[T]) SaveToken(ctx context.Context, principal T, token string) error {
	key := redisTokenPrefix + s.userID(principal)

	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, token)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisTokenStore[T]) HasToken(ctx context.Context, principal T, token string) (bool, error) {
	return s.client.SIsMember(ctx, redisTokenPrefix+s.userID(principal), token).Result()
}

func (s *RedisTokenStore[T]) DropToken(ctx context.Context, principal T, token string) error {
	return s.client.SRem(ctx, redisTokenPrefix+s.userID(principal), token).Err()
}

func (s *RedisTokenStore[T]) ClearTokens(ctx context.Context, principal T) error {
	return s.client.Del(ctx, redisTokenPrefix+s.userID(principal)).Err()
}
