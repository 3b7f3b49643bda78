package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, ":8080", cfg.App.HTTPAddr)
		assert.Equal(t, ":50051", cfg.App.GRPCAddr)
		assert.Equal(t, "http://localhost:8081", cfg.Backend.BaseURL)
		assert.Zero(t, cfg.Backend.Timeout)
		assert.Equal(t, "memory", cfg.Storage.Driver)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Workers.Count)
		assert.Equal(t, 64, cfg.Workers.QueueSize)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("loads values from environment variables with PIZZERIA prefix", func(t *testing.T) {
		t.Setenv("PIZZERIA_APP_ENV", "production")
		t.Setenv("PIZZERIA_APP_HTTP_ADDR", ":9000")
		t.Setenv("PIZZERIA_BACKEND_BASE_URL", "https://pizza.example.com")
		t.Setenv("PIZZERIA_BACKEND_TIMEOUT", "3s")
		t.Setenv("PIZZERIA_STORAGE_DRIVER", "redis")
		t.Setenv("PIZZERIA_REDIS_ADDR", "redis:6379")
		t.Setenv("PIZZERIA_REDIS_DB", "2")
		t.Setenv("PIZZERIA_WORKERS_COUNT", "4")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.App.HTTPAddr)
		assert.Equal(t, "https://pizza.example.com", cfg.Backend.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, "redis", cfg.Storage.Driver)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, 4, cfg.Workers.Count)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("rejects unknown storage driver", func(t *testing.T) {
		t.Setenv("PIZZERIA_STORAGE_DRIVER", "cookies")

		_, err := Load()
		assert.ErrorContains(t, err, "unsupported storage driver")
	})

	t.Run("rejects backend url without scheme", func(t *testing.T) {
		t.Setenv("PIZZERIA_BACKEND_BASE_URL", "localhost:8081")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid backend base url")
	})
}
