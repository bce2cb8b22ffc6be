package kvstore

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore backs the summary cache with go-cache. Entries never
// expire; lifetime is the process.
type MemoryStore struct {
	cache *cache.Cache
}

var _ Store = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (s *MemoryStore) Set(_ context.Context, key, value string) {
	s.cache.Set(key, value, cache.NoExpiration)
}

func (s *MemoryStore) Delete(_ context.Context, key string) {
	s.cache.Delete(key)
}
