package cached

import (
	"context"
	"errors"
	"testing"
	"time"

	"bark-advisor/internal/platform/cache"
	"bark-advisor/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string, any) error                  { return errors.New("down") }
func (brokenCache) Set(context.Context, string, any, time.Duration) error { return errors.New("down") }
func (brokenCache) Delete(context.Context, string) error                   { return errors.New("down") }

func TestVerifier_CachesSuccessOnly(t *testing.T) {
	calls := 0
	next := auth.VerifierFunc(func(_ context.Context, token string) (auth.Claims, error) {
		calls++
		if token == "good" {
			return auth.Claims{UserID: "user-1"}, nil
		}
		return auth.Claims{}, auth.ErrInvalidToken
	})

	v := NewVerifier(next, cache.NewMemory(), time.Minute, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c, err := v.Verify(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, "user-1", c.UserID)
	}
	assert.Equal(t, 1, calls)

	for i := 0; i < 2; i++ {
		_, err := v.Verify(ctx, "bad")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
	assert.Equal(t, 3, calls)
}

func TestVerifier_CacheFailureFallsThrough(t *testing.T) {
	next := auth.VerifierFunc(func(context.Context, string) (auth.Claims, error) {
		return auth.Claims{UserID: "user-1"}, nil
	})

	c, err := NewVerifier(next, brokenCache{}, time.Minute, nil).Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
}

func TestCacheKey_DoesNotLeakToken(t *testing.T) {
	k := cacheKey("my-secret-token")
	assert.NotContains(t, k, "my-secret-token")
	assert.Equal(t, k, cacheKey("my-secret-token"))
}
