// README: Redis-backed distance cache; TTL handles expiry, no sweeper needed.
package distance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisKeyPrefix = "distance:"

// RedisStore caches results in Redis with the cache TTL applied per key.
// Redis errors are treated as cache misses; the resolver falls through to
// the provider.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, log: log}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Result, bool) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Debug().Err(err).Str("key", key).Msg("distance cache read failed")
		}
		return Result{}, false
	}
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("distance cache entry corrupt")
		return Result{}, false
	}
	return r, true
}

func (s *RedisStore) Set(ctx context.Context, key string, r Result) {
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("distance cache write failed")
	}
}
