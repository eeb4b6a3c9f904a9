package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "console:cred:"

// RedisKey is the redis key of one credential of a session.
func RedisKey(sessionID, key string) string {
	return fmt.Sprintf("%s%s:%s", redisKeyPrefix, sessionID, key)
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore keeps credentials for ttl after the last write. A zero ttl
// keeps them until deleted.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	sid := sessionFrom(ctx)
	if sid == "" {
		return "", false, nil
	}

	v, err := s.rdb.Get(ctx, RedisKey(sid, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	sid := sessionFrom(ctx)
	if sid == "" {
		return ErrNoSession
	}
	return s.rdb.Set(ctx, RedisKey(sid, key), value, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	sid := sessionFrom(ctx)
	if sid == "" || len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = RedisKey(sid, k)
	}
	return s.rdb.Del(ctx, redisKeys...).Err()
}
