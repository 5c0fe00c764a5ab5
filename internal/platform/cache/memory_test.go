package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetExpire(t *testing.T) {
	m := NewMemory()
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "k", map[string]int{"weight": 42}, time.Minute))

	var got map[string]int
	require.NoError(t, m.Get(ctx, "k", &got))
	assert.Equal(t, 42, got["weight"])

	now = now.Add(time.Minute)
	assert.ErrorIs(t, m.Get(ctx, "k", &got), ErrMiss)
}

func TestMemory_NoTTLAndDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	var s string
	require.NoError(t, m.Get(ctx, "k", &s))
	assert.Equal(t, "v", s)

	require.NoError(t, m.Delete(ctx, "k"))
	assert.ErrorIs(t, m.Get(ctx, "k", &s), ErrMiss)
}

func TestMemory_SetSweepsExpiredEntries(t *testing.T) {
	m := NewMemory()
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 10000; i++ {
		require.NoError(t, m.Set(ctx, fmt.Sprintf("search:%d", i), i, time.Minute))
	}
	require.NoError(t, m.Set(ctx, "forever", "v", 0))
	assert.Len(t, m.data, 10001)

	now = now.Add(time.Hour)
	require.NoError(t, m.Set(ctx, "fresh", 1, time.Minute))

	assert.Len(t, m.data, 2, "only the live entries remain")
	var s string
	require.NoError(t, m.Get(ctx, "forever", &s))
}

func TestMemory_SweepIsThrottled(t *testing.T) {
	m := NewMemory()
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", 1, time.Second))
	now = now.Add(2 * time.Second)

	// dentro de la ventana no se recorre el mapa
	require.NoError(t, m.Set(ctx, "b", 1, time.Hour))
	assert.Len(t, m.data, 2)

	now = now.Add(sweepEvery)
	require.NoError(t, m.Set(ctx, "c", 1, time.Hour))
	assert.Len(t, m.data, 2)
	_, ok := m.data["a"]
	assert.False(t, ok)
}
