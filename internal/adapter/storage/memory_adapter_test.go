package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdapter_SetGet(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	_, ok, err := adapter.Get(ctx, "firstName")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, adapter.Set(ctx, "firstName", "Hadas", time.Hour))
	require.NoError(t, adapter.Set(ctx, "selectedIngredients", `["tuna"]`, 0))

	value, ok, err := adapter.Get(ctx, "firstName")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Hadas", value)

	value, ok, err = adapter.Get(ctx, "selectedIngredients")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["tuna"]`, value)
}

func TestMemoryAdapter_Expiry(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "phone", "0521234567", 20*time.Millisecond))
	require.NoError(t, adapter.Set(ctx, "city", "Haifa", 0))

	time.Sleep(40 * time.Millisecond)

	_, ok, err := adapter.Get(ctx, "phone")
	require.NoError(t, err)
	assert.False(t, ok, "expired entry should be gone")

	_, ok, err = adapter.Get(ctx, "city")
	require.NoError(t, err)
	assert.True(t, ok, "entry without ttl should never expire")
}

func TestMemoryAdapter_Overwrite(t *testing.T) {
	adapter := NewMemoryAdapter()
	adapter.Start()
	defer adapter.Stop()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "street", "Herzl", time.Hour))
	require.NoError(t, adapter.Set(ctx, "street", "Jaffa", time.Hour))

	value, _, err := adapter.Get(ctx, "street")
	require.NoError(t, err)
	assert.Equal(t, "Jaffa", value)
}
