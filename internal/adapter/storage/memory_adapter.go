package storage

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryAdapter keeps client storage in process. Reads do not extend the
// expiry of an entry.
type MemoryAdapter struct {
	cache *ttlcache.Cache[string, string]
}

func NewMemoryAdapter() *MemoryAdapter {
	cache := ttlcache.New[string, string](
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	return &MemoryAdapter{cache: cache}
}

// Start runs the expiry loop until Stop is called.
func (m *MemoryAdapter) Start() {
	m.cache.Start()
}

func (m *MemoryAdapter) Stop() {
	m.cache.Stop()
}

func (m *MemoryAdapter) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	m.cache.Set(key, value, ttl)
	return nil
}

func (m *MemoryAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	item := m.cache.Get(key)
	if item == nil || item.IsExpired() {
		return "", false, nil
	}
	return item.Value(), true, nil
}
