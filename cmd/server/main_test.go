package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// slowStore delays writes of one value so later writes can overtake it.
type slowStore struct {
	mu     sync.Mutex
	slow   string
	values map[string]string
}

func (s *slowStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if value == s.slow {
		time.Sleep(50 * time.Millisecond)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *slowStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func TestStartWriters_KeepsPerKeyOrder(t *testing.T) {
	store := &slowStore{slow: `["a"]`, values: make(map[string]string)}
	queue := make(chan domain.StorageEntry, 8)

	wg := startWriters(4, 8, queue, store, zap.NewNop())

	queue <- domain.StorageEntry{Key: domain.SelectionKey, Value: `["a"]`}
	queue <- domain.StorageEntry{Key: domain.SelectionKey, Value: `["a","b"]`}
	queue <- domain.StorageEntry{Key: domain.FieldCity, Value: "Haifa"}
	close(queue)
	wg.Wait()

	got, ok, _ := store.Get(context.Background(), domain.SelectionKey)
	assert.True(t, ok)
	assert.Equal(t, `["a","b"]`, got)

	got, _, _ = store.Get(context.Background(), domain.FieldCity)
	assert.Equal(t, "Haifa", got)
}

func TestStartWriters_ZeroWorkers(t *testing.T) {
	store := &slowStore{values: make(map[string]string)}
	queue := make(chan domain.StorageEntry, 1)

	wg := startWriters(0, 0, queue, store, zap.NewNop())
	queue <- domain.StorageEntry{Key: domain.FieldPhone, Value: "0501234567"}
	close(queue)
	wg.Wait()

	got, _, _ := store.Get(context.Background(), domain.FieldPhone)
	assert.Equal(t, "0501234567", got)
}
