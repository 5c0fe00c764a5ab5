package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere un Redis real: TEST_REDIS_ADDR=localhost:6379 go test ./...
func TestRedis_Integration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := OpenRedis(ctx, addr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	defer client.Close()

	prefix := "it-" + uuid.NewString() + ":"
	c := NewRedis(client, prefix)
	defer func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
	}()

	// redis.Nil => ErrMiss
	var got map[string]int
	assert.ErrorIs(t, c.Get(ctx, "missing", &got), ErrMiss)

	require.NoError(t, c.Set(ctx, "k", map[string]int{"weight": 42}, time.Minute))
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, 42, got["weight"])

	// la key real lleva el prefix
	raw, err := client.Get(ctx, prefix+"k").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"weight":42}`, raw)
	_, err = client.Get(ctx, "k").Result()
	assert.ErrorIs(t, err, redis.Nil)

	// TTL se pasa tal cual
	ttl, err := client.TTL(ctx, prefix+"k").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, c.Set(ctx, "forever", "v", 0))
	ttl, err = client.TTL(ctx, prefix+"forever").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "ttl 0 => sin expiración")

	require.NoError(t, c.Delete(ctx, "k"))
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrMiss)
}
