package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisAdapter_SetGet(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:client:")

	// Setup
	client.Del(ctx, "test:client:firstName")

	_, ok, err := adapter.Get(ctx, "firstName")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}

	if err := adapter.Set(ctx, "firstName", "Hadas", time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := adapter.Get(ctx, "firstName")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "Hadas" {
		t.Errorf("expected Hadas, got %q (found=%v)", value, ok)
	}

	// Verify TTL applied
	ttl, _ := client.TTL(ctx, "test:client:firstName").Result()
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("expected ttl within an hour, got %v", ttl)
	}
}

func TestRedisAdapter_NoExpiry(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:client:")

	if err := adapter.Set(ctx, "selectedIngredients", `["tuna","corn"]`, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	ttl, _ := client.TTL(ctx, "test:client:selectedIngredients").Result()
	if ttl != -1 {
		t.Errorf("expected no expiry, got %v", ttl)
	}
}

func TestRedisAdapter_Expiry(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:client:")

	if err := adapter.Set(ctx, "phone", "0521234567", 50*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	_, ok, err := adapter.Get(ctx, "phone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected key to expire")
	}
}
