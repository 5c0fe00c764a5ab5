package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bark-advisor/internal/adapters/auth/cached"
	"bark-advisor/internal/adapters/auth/jwt"
	"bark-advisor/internal/adapters/recommender"
	"bark-advisor/internal/config"
	"bark-advisor/internal/platform/cache"
	"bark-advisor/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVerifier(t *testing.T) {
	c := cache.NewMemory()

	t.Run("dev mode", func(t *testing.T) {
		v, err := buildVerifier(config.Config{}, c, logger.Nop())
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("production without verifier refuses to start", func(t *testing.T) {
		cfg := config.Config{App: config.App{Env: "production"}}
		v, err := buildVerifier(cfg, c, logger.Nop())
		assert.ErrorIs(t, err, ErrNoVerifierInProduction)
		assert.Nil(t, v)
	})

	t.Run("production with jwt", func(t *testing.T) {
		cfg := config.Config{App: config.App{Env: "production"}, Auth: config.Auth{JWTSecret: "s3cret"}}
		v, err := buildVerifier(cfg, c, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("jwt wins", func(t *testing.T) {
		cfg := config.Config{Auth: config.Auth{JWTSecret: "s3cret", IdentityBaseURL: "http://identity.local"}}
		v, err := buildVerifier(cfg, c, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &jwt.Verifier{}, v)
	})

	t.Run("identity is cached", func(t *testing.T) {
		cfg := config.Config{Auth: config.Auth{IdentityBaseURL: "http://identity.local", IdentityAPIKey: "k"}}
		v, err := buildVerifier(cfg, c, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &cached.Verifier{}, v)
	})
}

func TestBuildRecommender(t *testing.T) {
	r, err := buildRecommender(config.Config{})
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = buildRecommender(config.Config{Search: config.Search{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: "http://llm.local",
	}})
	require.NoError(t, err)
	assert.IsType(t, &recommender.OpenAI{}, r)
}

func TestBuildCache_MemoryWithoutRedis(t *testing.T) {
	c, closeFn, err := buildCache(context.Background(), config.Config{}, logger.Nop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &cache.Memory{}, c)
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["token"])
	assert.NotNil(t, serveCmd.Flags().Lookup("migrate"))
}

func TestTokenCommand_IssuesVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--user", "u-1", "--email", "a@b.c"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	v, err := jwt.NewVerifier("s3cret")
	require.NoError(t, err)
	claims, err := v.Verify(context.Background(), strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
}
