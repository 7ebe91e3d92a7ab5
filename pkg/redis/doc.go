// Package redis provides connection helpers for the Redis-backed session
// backend and remember-token store.
//
// Connect wraps the go-redis client with a retry loop and a readiness ping;
// Config can be populated from environment variables via
// github.com/caarlos0/env.
//
//	cfg := redis.DefaultConfig()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	backend := session.NewRedisBackend(client, 30*24*time.Hour)
package redis
