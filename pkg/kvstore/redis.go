package kvstore

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the summary cache in Redis, so cached summaries
// survive a service restart. This is the only state that does.
type RedisStore struct {
	rdb *redis.Client
}

var _ Store = &RedisStore{}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("[WARN] kvstore: redis GET %s failed: %v", key, err)
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		log.Printf("[WARN] kvstore: redis SET %s failed: %v", key, err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("[WARN] kvstore: redis DEL %s failed: %v", key, err)
	}
}
