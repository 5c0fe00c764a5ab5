package main

import (
	"context"
	"errors"

	"bark-advisor/internal/adapters/auth/cached"
	"bark-advisor/internal/adapters/auth/identity"
	"bark-advisor/internal/adapters/auth/jwt"
	"bark-advisor/internal/adapters/recommender"
	"bark-advisor/internal/config"
	"bark-advisor/internal/platform/cache"
	"bark-advisor/internal/platform/logger"
	"bark-advisor/internal/ports/auth"
	"bark-advisor/internal/web"
)

// ErrNoVerifierInProduction: sin verifier el modo dev deja elegir cualquier usuario.
var ErrNoVerifierInProduction = errors.New("APP_ENV=production requires JWT_SECRET or IDENTITY_BASE_URL")

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
}

func syncLogger(log logger.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

// buildCache usa Redis si hay REDIS_ADDR; si no, cache en memoria del proceso.
func buildCache(ctx context.Context, cfg config.Config, log logger.Logger) (cache.Cache, func(), error) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemory(), func() {}, nil
	}
	client, err := cache.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	log.Info("redis cache enabled", map[string]any{"addr": cfg.Redis.Addr})
	return cache.NewRedis(client, cfg.App.Name+":"), func() { _ = client.Close() }, nil
}

// buildVerifier elige cómo validar sesiones:
//   - JWT_SECRET => tokens HS256 locales
//   - IDENTITY_BASE_URL => servicio de identidad, con cache de claims
//   - nada => modo dev (X-Debug-User-ID / cookie bark_debug_user), salvo en production
func buildVerifier(cfg config.Config, c cache.Cache, log logger.Logger) (auth.AuthVerifier, error) {
	if cfg.Auth.JWTSecret != "" {
		return jwt.NewVerifier(cfg.Auth.JWTSecret)
	}
	if cfg.Auth.IdentityBaseURL != "" {
		client, err := identity.NewClient(identity.Config{
			BaseURL: cfg.Auth.IdentityBaseURL,
			APIKey:  cfg.Auth.IdentityAPIKey,
		})
		if err != nil {
			return nil, err
		}
		return cached.NewVerifier(client, c, cfg.Auth.CacheTTL, log), nil
	}
	if cfg.IsProduction() {
		return nil, ErrNoVerifierInProduction
	}
	log.Warn("no auth verifier configured, accepting debug identities", nil)
	return nil, nil
}

// buildRecommender devuelve nil si no hay API key: la búsqueda muestra el aviso.
func buildRecommender(cfg config.Config) (web.Recommender, error) {
	if cfg.Search.OpenAIAPIKey == "" {
		return nil, nil
	}
	return recommender.NewOpenAI(recommender.Config{
		BaseURL:           cfg.Search.OpenAIBaseURL,
		APIKey:            cfg.Search.OpenAIAPIKey,
		Model:             cfg.Search.OpenAIModel,
		RequestsPerSecond: cfg.Search.RequestsPerSecond,
	})
}
