package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// MemoryCache keeps sessions in process memory. Sessions are lost on restart,
// so it is meant for local runs and tests when no redis is configured.
type MemoryCache struct {
	items *gocache.Cache
}

func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (m *MemoryCache) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.items.Get(key)
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v.(string), nil)
}

func (m *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.items.Set(key, stringify(value), ttl)
	return redis.NewStatusResult("OK", nil)
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.items.Get(k); ok {
			m.items.Delete(k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *MemoryCache) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *MemoryCache) Close() error {
	m.items.Flush()
	return nil
}

// stringify mirrors how go-redis writes values so Get returns the same text.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
